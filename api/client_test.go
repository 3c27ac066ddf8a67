package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashVerma-code/OS-Assignment/sim"
	"github.com/YashVerma-code/OS-Assignment/sim/workload"
)

const testBaseURL = "http://scheduler.test"

// serveWithApp answers mocked requests with a real in-process app.
func serveWithApp(t *testing.T) {
	app := NewApp(NewSchedulerHandlerImpl(sim.Config{}, 0))
	proxy := func(req *http.Request) (*http.Response, error) {
		return app.Test(req, -1)
	}
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v1/policies", proxy)
	httpmock.RegisterResponder(http.MethodPost, `=~^`+testBaseURL+`/api/v1/simulate/\w+\z`, proxy)
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/v1/compare", proxy)
}

func TestClient_AgainstApp(t *testing.T) {
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()
	serveWithApp(t)

	client := NewClient(testBaseURL + "/")
	ctx := context.Background()

	t.Run("policies", func(t *testing.T) {
		out, err := client.Policies(ctx)
		require.NoError(t, err)
		assert.Equal(t, sim.PolicyNames(), out.Policies)
	})

	t.Run("simulate", func(t *testing.T) {
		res, err := client.Simulate(ctx, "fcfs", &SimulateRequest{Processes: workload.DefaultScenario()})
		require.NoError(t, err)
		assert.Equal(t, "fcfs", res.Policy)
		assert.Equal(t, int64(120), res.Metrics.TotalTicks)
		assert.Equal(t, 39.5, res.Metrics.AvgWaiting)
	})

	t.Run("compare", func(t *testing.T) {
		out, err := client.Compare(ctx, &SimulateRequest{Processes: workload.DefaultScenario(), Policies: []string{"rr"}})
		require.NoError(t, err)
		require.Len(t, out.Results, 1)
		assert.Equal(t, int64(117), out.Results[0].Metrics.TotalTicks)
	})

	t.Run("server rejects request", func(t *testing.T) {
		_, err := client.Simulate(ctx, "lottery", &SimulateRequest{Processes: workload.DefaultScenario()})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Contains(t, apiErr.Message, "lottery")
	})
}

func TestClient_NonJSONError_KeepsBody(t *testing.T) {
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v1/policies",
		httpmock.NewStringResponder(http.StatusBadGateway, "upstream down\n"))

	_, err := NewClient(testBaseURL).Policies(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestClient_TransportError(t *testing.T) {
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/v1/compare",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	_, err := NewClient(testBaseURL).Compare(context.Background(), &SimulateRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/v1/policies",
		httpmock.NewStringResponder(http.StatusOK, "not json"))

	_, err := NewClient(testBaseURL).Policies(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}
