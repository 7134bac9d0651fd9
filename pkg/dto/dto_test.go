package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/emreokt/bankoffice/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeMarshalFormat(t *testing.T) {
	d := dto.NewDateTime(time.Date(2025, 1, 1, 18, 30, 0, 0, time.UTC))
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-01 18:30:00"`, string(data))
}

func TestDateTimeUnmarshal(t *testing.T) {
	var d dto.DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2025-01-01 18:30:00"`), &d))
	assert.Equal(t, time.Date(2025, 1, 1, 18, 30, 0, 0, time.UTC), d.Time())

	require.Error(t, json.Unmarshal([]byte(`"2025-01-01T18:30:00Z"`), &d))
}

func TestDateTimeRoundTripKeepsInstant(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, loc)

	data, err := json.Marshal(dto.NewDateTime(at))
	require.NoError(t, err)
	assert.Equal(t, `"2025-06-01 09:00:00"`, string(data))

	var back dto.DateTime
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Time().Equal(at), "round trip must keep the instant")
}

func TestDateTimeUnmarshalRejectsMalformedJSON(t *testing.T) {
	var d dto.DateTime
	require.Error(t, d.UnmarshalJSON([]byte(`2025-01-01 18:30:00`)))
	require.Error(t, d.UnmarshalJSON([]byte(`"2025-01-01 18:30:00`)))
	require.Error(t, d.UnmarshalJSON([]byte(`12345`)))

	require.NoError(t, d.UnmarshalJSON([]byte(`null`)))
	assert.True(t, d.Time().IsZero())
}

func TestTransactionFilterNormalize(t *testing.T) {
	f := dto.TransactionFilter{}
	f.Normalize()
	assert.Equal(t, 0, f.Page)
	assert.Equal(t, dto.DefaultPageSize, f.Size)

	f = dto.TransactionFilter{Page: -3, Size: 5000}
	f.Normalize()
	assert.Equal(t, 0, f.Page)
	assert.Equal(t, dto.MaxPageSize, f.Size)
}

func TestTransactionFilterValidate(t *testing.T) {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f := dto.TransactionFilter{FromDate: &from, ToDate: &to}
	require.ErrorIs(t, f.Validate(), domain.ErrInvalidDateRange)

	minAmount := money.New(1000)
	maxAmount := money.New(500)
	f = dto.TransactionFilter{MinAmount: &minAmount, MaxAmount: &maxAmount}
	require.ErrorIs(t, f.Validate(), domain.ErrInvalidAmountRange)

	f = dto.TransactionFilter{FromDate: &to, ToDate: &from, MinAmount: &maxAmount, MaxAmount: &minAmount}
	require.NoError(t, f.Validate())

	f = dto.TransactionFilter{}
	require.NoError(t, f.Validate())
}

func TestNewPage(t *testing.T) {
	page := dto.NewPage([]int{1, 2, 3}, 25, 0, 10)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 10, page.Size)

	empty := dto.NewPage([]int{}, 0, 2, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Content)
}
