package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/testutil"
	supplementsv1 "supplements-backend/proto/supplements/v1"
	"supplements-backend/proto/supplements/v1/supplementsv1connect"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/db"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"
)

func TestMuxServesJsonAndRpc(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "supplements-server",
		DbSchema: db.Schema,
	})
	defer cleanup()

	recorder := &telemetry.Recorder{}
	svc := supplements.NewService(res.DB, constantFetcher(12.5), supplements.WithCustomTelemetryAPI(recorder))
	ctx := context.Background()
	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)

	server := httptest.NewServer(NewMux(svc, recorder, RpcConfig{AccessToken: "secret"}))
	defer server.Close()

	jsonRes, err := server.Client().Get(server.URL + "/supplements")
	require.NoError(t, err)
	jsonRes.Body.Close()
	require.Equal(t, http.StatusOK, jsonRes.StatusCode)

	client := supplementsv1connect.NewSupplementsServiceClient(server.Client(), server.URL)

	_, err = client.ListSupplements(ctx, connect.NewRequest(&supplementsv1.ListSupplementsRequest{}))
	require.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	req := connect.NewRequest(&supplementsv1.ListSupplementsRequest{})
	req.Header().Set("Authorization", "Bearer secret")
	listed, err := client.ListSupplements(ctx, req)
	require.NoError(t, err)

	catalog, err := svc.ListSupplements(ctx)
	require.NoError(t, err)
	require.Len(t, listed.Msg.GetSupplements(), len(catalog))
	require.NotEmpty(t, catalog)
}
