package monitoring

import (
	"context"
	"testing"
)

func Test_getSegmentName(t *testing.T) {
	type args struct {
		fullFuncName string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "package.Receiver.Method",
			args: args{
				fullFuncName: "github.com/username/project/package.(*Receiver).Method",
			},
			want: "package.Receiver.Method",
		},
		{
			name: "package.Receiver.Method",
			args: args{
				fullFuncName: "github.com/username/project/package.Receiver.Method",
			},
			want: "package.Receiver.Method",
		},
		{
			name: "package.Function",
			args: args{
				fullFuncName: "github.com/username/project/package.Function",
			},
			want: "package.Function",
		},
		{
			name: "main.main.main",
			args: args{
				fullFuncName: "main.main.main",
			},
			want: "main.main.main",
		},
		{
			name: "main.main",
			args: args{
				fullFuncName: "main.main",
			},
			want: "main.main",
		},
		{
			name: "http.Server.Serve",
			args: args{
				fullFuncName: "net/http.(*Server).Serve",
			},
			want: "http.Server.Serve",
		},
		{
			name: "closure",
			args: args{
				fullFuncName: "github.com/username/project/aggregator.(*Session).Start.func2",
			},
			want: "aggregator.Session.Start",
		},
		{
			name: "nested closure",
			args: args{
				fullFuncName: "github.com/username/project/services.(*loan).ApproveLoan.func1.1",
			},
			want: "services.loan.ApproveLoan",
		},
		{
			name: "generic function",
			args: args{
				fullFuncName: "github.com/username/project/cache.getOrSet[...]",
			},
			want: "cache.getOrSet",
		},
		{
			name: "runtime.goexit",
			args: args{
				fullFuncName: "runtime.goexit",
			},
			want: "runtime.goexit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getSegmentName(tt.args.fullFuncName); got != tt.want {
				t.Errorf("getSegmentName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_layerFromFile(t *testing.T) {
	tests := map[string]string{
		"/src/internal/repositories/sql_loan.go": LayerRepository,
		"/src/internal/services/loan_service.go": LayerService,
		"/src/internal/deliveries/http/v1/l.go":  LayerDelivery,
		"/src/internal/aggregator/aggregator.go": LayerAggregator,
		"/src/internal/projection/projection.go": LayerUnknown,
	}
	for file, want := range tests {
		if got := layerFromFile(file); got != want {
			t.Errorf("layerFromFile(%s) = %v, want %v", file, got, want)
		}
	}
}

func TestNew_withoutTransaction(t *testing.T) {
	m := New(context.Background(), WithLayer(LayerService), WithSegmentName("loan.Approve"))
	if m.layer != LayerService || m.segmentName != "loan.Approve" || m.segment != nil {
		t.Errorf("unexpected monitor %+v", m)
	}
	m.Finish(WithFinishCheckError(nil))
}

func TestNew_callerSegment(t *testing.T) {
	m := New(context.Background())
	if m.segmentName != "monitoring.TestNew_callerSegment" {
		t.Errorf("segmentName = %v", m.segmentName)
	}
	if m.layer != LayerUnknown {
		t.Errorf("layer = %v", m.layer)
	}
	m.Finish(WithFinishXlogFields(), WithFinishCheckError(context.Canceled))
}
