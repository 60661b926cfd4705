package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutation_Success(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var settled []string

	m := NewMutation(func(ctx context.Context, n int) (string, error) {
		close(started)
		<-release
		return "ok", nil
	}, MutationOptions[int, string]{
		OnSuccess: func(res string, req int) { settled = append(settled, "success") },
		OnError:   func(err error, req int) { settled = append(settled, "error") },
		OnSettled: func(res string, err error, req int) { settled = append(settled, "settled") },
	})
	assert.Equal(t, StatusIdle, m.Status())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.Mutate(context.Background(), 1)
	}()

	<-started
	assert.True(t, m.IsPending())
	close(release)
	<-done

	assert.Equal(t, StatusSuccess, m.Status())
	assert.Equal(t, "ok", m.Data())
	assert.NoError(t, m.Err())
	assert.Equal(t, []string{"success", "settled"}, settled)
}

func TestMutation_Error(t *testing.T) {
	boom := errors.New("boom")
	var gotErr error
	m := NewMutation(func(ctx context.Context, n int) (string, error) {
		return "", boom
	}, MutationOptions[int, string]{
		OnError: func(err error, req int) { gotErr = err },
	})

	_, err := m.Mutate(context.Background(), 1)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StatusError, m.Status())
	assert.ErrorIs(t, m.Err(), boom)
	assert.ErrorIs(t, gotErr, boom)
}

func TestMutation_Reset(t *testing.T) {
	m := NewMutation(func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	}, MutationOptions[int, int]{})

	res, err := m.Mutate(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, res)

	m.Reset()
	assert.Equal(t, StatusIdle, m.Status())
	assert.Zero(t, m.Data())
}

func TestMutation_ResetDuringFlightKeepsIdle(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	m := NewMutation(func(ctx context.Context, n int) (int, error) {
		close(started)
		<-release
		return n, nil
	}, MutationOptions[int, int]{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.Mutate(context.Background(), 5)
	}()
	<-started
	m.Reset()
	close(release)
	<-done

	assert.Equal(t, StatusIdle, m.Status())
}

func TestRedeemMutation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"This gift order has already been redeemed."}`))
	}))
	defer srv.Close()

	var settledErr error
	m := NewRedeemMutation(NewClient(srv.URL, "tok", time.Second), MutationOptions[GiftOrderRequest, *domain.GiftOrderView]{
		OnSettled: func(res *domain.GiftOrderView, err error, req GiftOrderRequest) { settledErr = err },
	})

	_, err := m.Mutate(context.Background(), GiftOrderRequest{OrderID: 42, RedemptionCode: "ABC123"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, StatusError, m.Status())
	assert.Equal(t, err, settledErr)
	assert.Nil(t, m.Data())
}
