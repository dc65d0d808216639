package monitoring

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerAggregator = "aggregator"
	LayerUnknown    = "unknown"
)

type segmentEnder interface {
	End()
}

type Monitor struct {
	ctx         context.Context
	segmentName string

	// one of the Layer constants
	layer string

	start time.Time

	segment segmentEnder
}

type initOptions struct {
	layer       string
	segmentName string
	collection  string
	operation   string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// WithDatastore records the segment as a Postgres datastore call on collection.
func WithDatastore(collection, operation string) InitOption {
	return func(o *initOptions) {
		o.collection = collection
		o.operation = operation
	}
}

// New starts a monitor for the calling function. Without WithSegmentName the
// segment is named after the caller and the layer is derived from its file.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	o := &initOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.segmentName == "" {
		// skip caller and New
		name, file := caller(2)
		o.segmentName = name
		if o.layer == "" {
			o.layer = layerFromFile(file)
		}
	}
	if o.layer == "" {
		o.layer = LayerUnknown
	}

	return &Monitor{
		ctx:         ctx,
		layer:       o.layer,
		start:       time.Now(),
		segmentName: o.segmentName,
		segment:     startSegment(ctx, o),
	}
}

func caller(skip int) (segmentName, file string) {
	pc, file, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", file
	}
	return getSegmentName(fn.Name()), file
}

func layerFromFile(file string) string {
	for _, layer := range []string{LayerRepository, LayerService, LayerDelivery, LayerAggregator} {
		if strings.Contains(file, layer) {
			return layer
		}
	}
	return LayerUnknown
}

func startSegment(ctx context.Context, o *initOptions) segmentEnder {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}

	if o.collection != "" {
		return &newrelic.DatastoreSegment{
			StartTime:  txn.StartSegmentNow(),
			Product:    newrelic.DatastorePostgres,
			Collection: o.collection,
			Operation:  o.operation,
		}
	}

	segment := txn.StartSegment(o.segmentName)
	segment.AddAttribute("layer", o.layer)
	return segment
}
