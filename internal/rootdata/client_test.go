// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rootdata

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// request is what the test server received.
type request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

func testServer(t *testing.T, status int, payload string) (*httptest.Server, *request) {
	t.Helper()
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Method = r.Method
		got.Path = r.URL.Path
		got.Header = r.Header.Clone()
		got.Body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := DefConfig
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	cl, err := New(cfg)
	require.NoError(t, err)
	return cl
}

func TestClient_Call(t *testing.T) {
	t.Run("returns data unmodified", func(t *testing.T) {
		const data = `{"items":[{"id":1,"name":"Ethereum"}],"total":1}`
		srv, got := testServer(t, http.StatusOK, `{"result":200,"data":`+data+`}`)
		cl := testClient(t, srv.URL)

		env, err := cl.Call(t.Context(), EpSearch, SearchRequest{Query: "eth"})
		require.NoError(t, err)
		assert.Equal(t, data, string(env.Data))

		assert.Equal(t, http.MethodPost, got.Method)
		assert.Equal(t, "/ser_inv", got.Path)
		assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", got.Header.Get("apikey"))
		assert.Equal(t, "en", got.Header.Get("language"))
	})
	t.Run("nil fields are sent as null", func(t *testing.T) {
		srv, got := testServer(t, http.StatusOK, `{"result":200,"data":{}}`)
		cl := testClient(t, srv.URL+"/")

		_, err := cl.Call(t.Context(), EpProject, ProjectRequest{ProjectID: 12})
		require.NoError(t, err)
		assert.Equal(t, "/get_item", got.Path)
		assert.JSONEq(t, `{"project_id":12,"include_team":null,"include_investors":null}`, string(got.Body))
	})
	t.Run("nil payload is an empty object", func(t *testing.T) {
		srv, got := testServer(t, http.StatusOK, `{"result":200,"data":[]}`)
		cl := testClient(t, srv.URL)

		_, err := cl.Call(t.Context(), EpNewTokens, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(got.Body))
	})
	t.Run("non-2xx status is a transport error", func(t *testing.T) {
		srv, _ := testServer(t, http.StatusServiceUnavailable, `oops`)
		cl := testClient(t, srv.URL)

		_, err := cl.Call(t.Context(), EpTagMap, nil)
		require.Error(t, err)
		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusServiceUnavailable, te.StatusCode)
		assert.Equal(t, EpTagMap, te.Endpoint)
		assert.Contains(t, err.Error(), "503")
	})
	t.Run("upstream error with message", func(t *testing.T) {
		srv, _ := testServer(t, http.StatusOK, `{"result":410,"message":"insufficient credits"}`)
		cl := testClient(t, srv.URL)

		_, err := cl.Call(t.Context(), EpHotIndex, HotIndexRequest{Days: 7})
		var ue *UpstreamError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, 410, ue.Code)
		assert.Equal(t, "insufficient credits", err.Error())
	})
	t.Run("upstream error without message", func(t *testing.T) {
		srv, _ := testServer(t, http.StatusOK, `{"result":500}`)
		cl := testClient(t, srv.URL)

		_, err := cl.Call(t.Context(), EpHotIndex, HotIndexRequest{Days: 7})
		var ue *UpstreamError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "API Error: 500", err.Error())
	})
	t.Run("malformed body", func(t *testing.T) {
		srv, _ := testServer(t, http.StatusOK, `<html>`)
		cl := testClient(t, srv.URL)

		_, err := cl.Call(t.Context(), EpTagMap, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})
	t.Run("connection failure", func(t *testing.T) {
		srv, _ := testServer(t, http.StatusOK, `{}`)
		cl := testClient(t, srv.URL)
		srv.Close()

		_, err := cl.Call(t.Context(), EpTagMap, nil)
		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Zero(t, te.StatusCode)
	})
	t.Run("cancelled context", func(t *testing.T) {
		srv, _ := testServer(t, http.StatusOK, `{"result":200}`)
		cl := testClient(t, srv.URL)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := cl.Call(ctx, EpTagMap, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestData(t *testing.T) {
	srv, _ := testServer(t, http.StatusOK, `{"result":200,"data":[1,2,3]}`)
	cl := testClient(t, srv.URL)

	got, err := Data(t.Context(), cl, EpNewTokens, nil)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`[1,2,3]`), got)
}

func TestNew_invalidConfig(t *testing.T) {
	_, err := New(DefConfig)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func Test_outcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, outcomeOK},
		{"transport", &TransportError{StatusCode: 502}, outcomeTransport},
		{"upstream", &UpstreamError{Code: 404}, outcomeUpstream},
		{"other", errors.New("boom"), outcomeOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcome(tt.err))
		})
	}
}
