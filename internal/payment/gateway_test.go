//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kirinyoku/adslot-go/internal/payment"
	"github.com/kirinyoku/adslot-go/internal/payment/mocks"
	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHostedGateway_CreatePaymentIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the intent and returns the hosted url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockIntentStore(ctrl)

		var stored string
		store.EXPECT().InsertIntent(gomock.Any(), nil, gomock.Any(), int64(1850), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ postgres.DB, handle string, _ int64, meta []byte) error {
				stored = handle

				var m map[string]string
				require.NoError(t, json.Unmarshal(meta, &m))
				assert.Equal(t, "ad-1", m["ad_id"])
				return nil
			})

		gw := payment.NewHostedGateway(store, "https://pay.example.com/", "secret")

		intent, err := gw.CreatePaymentIntent(ctx, 1850, map[string]string{"ad_id": "ad-1"})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(intent.Handle, payment.HandlePrefix))
		assert.Equal(t, stored, intent.Handle)
		assert.Equal(t, "https://pay.example.com/pay/"+intent.Handle, intent.URL)
	})

	t.Run("zero amount is rejected without storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := payment.NewHostedGateway(mocks.NewMockIntentStore(ctrl), "http://x", "secret")

		_, err := gw.CreatePaymentIntent(ctx, 0, nil)
		require.ErrorIs(t, err, payment.ErrInvalidAmount)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockIntentStore(ctrl)
		store.EXPECT().InsertIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("boom"))

		_, err := payment.NewHostedGateway(store, "http://x", "secret").CreatePaymentIntent(ctx, 100, nil)
		require.Error(t, err)
	})
}

func TestHostedGateway_MarkSucceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIntentStore(ctrl)
	store.EXPECT().MarkIntent(gomock.Any(), nil, "pi_1", postgres.IntentSucceeded).Return(nil)

	err := payment.NewHostedGateway(store, "http://x", "secret").MarkSucceeded(context.Background(), nil, "pi_1")
	require.NoError(t, err)
}

func TestHostedGateway_ParseEvent(t *testing.T) {
	gw := payment.NewHostedGateway(nil, "http://x", "secret")
	other := payment.NewHostedGateway(nil, "http://x", "other")

	body := []byte(`{"type":"payment.succeeded","payment_handle":"pi_1"}`)

	tests := []struct {
		name    string
		body    []byte
		sig     string
		want    payment.Event
		wantErr error
	}{
		{
			name: "valid",
			body: body,
			sig:  gw.Sign(body),
			want: payment.Event{Type: payment.EventPaymentSucceeded, PaymentHandle: "pi_1"},
		},
		{
			name: "unhandled type still decodes",
			body: []byte(`{"type":"payment.refunded"}`),
			sig:  gw.Sign([]byte(`{"type":"payment.refunded"}`)),
			want: payment.Event{Type: "payment.refunded"},
		},
		{name: "wrong secret", body: body, sig: other.Sign(body), wantErr: payment.ErrBadSignature},
		{name: "not hex", body: body, sig: "zz", wantErr: payment.ErrBadSignature},
		{name: "missing signature", body: body, sig: "", wantErr: payment.ErrBadSignature},
		{name: "bad json", body: []byte(`{`), sig: gw.Sign([]byte(`{`)), wantErr: payment.ErrMalformedEvent},
		{
			name:    "succeeded without handle",
			body:    []byte(`{"type":"payment.succeeded"}`),
			sig:     gw.Sign([]byte(`{"type":"payment.succeeded"}`)),
			wantErr: payment.ErrMalformedEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gw.ParseEvent(tt.body, tt.sig)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHostedGateway_VerifySignature(t *testing.T) {
	gw := payment.NewHostedGateway(nil, "", "secret")
	body := []byte("payload")

	assert.True(t, gw.VerifySignature(body, gw.Sign(body)))
	assert.True(t, gw.VerifySignature(body, " "+gw.Sign(body)+"\n"))
	assert.False(t, gw.VerifySignature([]byte("payload!"), gw.Sign(body)))
}
