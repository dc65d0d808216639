package idgenerator_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common/idgenerator"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	t.Run("created new id with prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate(idgenerator.PrefixTransaction)
		assert.Regexp(t, regexp.MustCompile(`^TX-\d{13}[A-Za-z0-9_-]{22}$`), id)
	})

	t.Run("created new id without prefix", func(t *testing.T) {
		generator := idgenerator.New()
		id := generator.Generate()
		assert.Regexp(t, regexp.MustCompile(`^\d{13}[A-Za-z0-9_-]{22}$`), id)
	})

	t.Run("ids are unique for the same millisecond", func(t *testing.T) {
		fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		generator := idgenerator.New(idgenerator.WithClock(func() time.Time { return fixed }))

		a := generator.Generate(idgenerator.PrefixTransaction)
		b := generator.Generate(idgenerator.PrefixTransaction)
		assert.NotEqual(t, a, b)
		assert.Contains(t, a, "TX-1772359200000")
	})
}
