package list_reservations

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restburger/reservation-service/internal/domain"
)

func TestToDomainFilter(t *testing.T) {
	t.Parallel()

	t.Run("empty query", func(t *testing.T) {
		filter := ToDomainFilter(url.Values{})
		assert.Nil(t, filter.FromDate)
		assert.Nil(t, filter.ToDate)
		assert.Nil(t, filter.Status)
	})

	t.Run("full query", func(t *testing.T) {
		filter := ToDomainFilter(url.Values{
			"from":   {"2024-12-01"},
			"to":     {"2024-12-31"},
			"status": {"confirmed"},
		})
		require.NotNil(t, filter.FromDate)
		require.NotNil(t, filter.ToDate)
		require.NotNil(t, filter.Status)
		assert.Equal(t, "2024-12-01", filter.FromDate.Format(domain.DateFormat))
		assert.Equal(t, "2024-12-31", filter.ToDate.Format(domain.DateFormat))
		assert.Equal(t, domain.StatusConfirmed, *filter.Status)
	})

	t.Run("status all means no filter", func(t *testing.T) {
		filter := ToDomainFilter(url.Values{"status": {"all"}})
		assert.Nil(t, filter.Status)
	})

	t.Run("invalid dates ignored", func(t *testing.T) {
		filter := ToDomainFilter(url.Values{
			"from": {"last week"},
			"to":   {"2024-13-45"},
		})
		assert.Nil(t, filter.FromDate)
		assert.Nil(t, filter.ToDate)
	})
}
