package crm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"openaria_tracking/internal/config"
	"openaria_tracking/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLead() entities.Lead {
	return entities.Lead{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Phone:        "+15551234567",
		BusinessType: "Salon",
		SelectedPlan: "Growth Plan",
		SourcePage:   "pricing",
		Tags:         []string{"Website Lead", "Growth Plan"},
		ConsentEmail: true,
		ConsentSMS:   true,
	}
}

func TestGoHighLevelClient_Forward(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewGoHighLevelClient(config.LeadConfig{WebhookURL: srv.URL + "/hooks/abc"}, nil)
	require.False(t, c.SimulationMode())
	require.NoError(t, c.Forward(context.Background(), sampleLead()))

	assert.Equal(t, "Jane", got["firstName"])
	assert.Equal(t, "Doe", got["lastName"])
	assert.Equal(t, "Salon", got["businessType"])
	assert.Equal(t, "Growth Plan", got["selectedPlan"])
	assert.Equal(t, "pricing", got["sourcePage"])
	assert.Equal(t, []any{"Website Lead", "Growth Plan"}, got["tags"])
	assert.Equal(t, "Website Lead, Growth Plan", got["tags_str"])
	assert.Equal(t, true, got["consentSMS"])
}

func TestGoHighLevelClient_Forward_Errors(t *testing.T) {
	t.Run("non-2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewGoHighLevelClient(config.LeadConfig{WebhookURL: srv.URL}, nil)
		err := c.Forward(context.Background(), sampleLead())

		var sErr *StatusError
		require.True(t, errors.As(err, &sErr))
		assert.Equal(t, http.StatusInternalServerError, sErr.StatusCode)
	})

	t.Run("transport", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		c := NewGoHighLevelClient(config.LeadConfig{WebhookURL: url}, &http.Client{Timeout: time.Second})
		assert.Error(t, c.Forward(context.Background(), sampleLead()))
	})
}

func TestGoHighLevelClient_SimulationMode(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	t.Run("no url succeeds without network", func(t *testing.T) {
		c := NewGoHighLevelClient(config.LeadConfig{WebhookURL: "  "}, srv.Client())
		require.True(t, c.SimulationMode())
		require.NoError(t, c.Forward(context.Background(), sampleLead()))
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("delay is applied", func(t *testing.T) {
		c := NewGoHighLevelClient(config.LeadConfig{SimulationDelay: 20 * time.Millisecond}, nil)
		start := time.Now()
		require.NoError(t, c.Forward(context.Background(), sampleLead()))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("delay honours cancellation", func(t *testing.T) {
		c := NewGoHighLevelClient(config.LeadConfig{SimulationDelay: time.Hour}, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, c.Forward(ctx, sampleLead()), context.Canceled)
	})
}
