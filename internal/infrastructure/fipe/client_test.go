package fipe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/infrastructure/config"
)

type testLogger struct{}

func (testLogger) Info(msg string, args ...any)    {}
func (testLogger) Error(msg string, args ...any)   {}
func (testLogger) Debug(msg string, args ...any)   {}
func (testLogger) Warn(msg string, args ...any)    {}
func (l testLogger) With(args ...any) ports.Logger { return l }

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.FipeConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, testLogger{})
}

// fipeAPI simula a cadeia marcas -> modelos -> anos -> valor da API pública
func fipeAPI() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/carros/marcas", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"codigo":"21","nome":"Fiat"},{"codigo":"59","nome":"VW - VolksWagen"}]`))
	})
	mux.HandleFunc("/carros/marcas/21/modelos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"modelos":[{"codigo":7940,"nome":"ARGO 1.0 6V Flex"},{"codigo":4828,"nome":"UNO MILLE 1.0"}]}`))
	})
	mux.HandleFunc("/carros/marcas/21/modelos/7940/anos", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"codigo":"2022-1","nome":"2022 Gasolina"},{"codigo":"2023-1","nome":"2023 Gasolina"}]`))
	})
	mux.HandleFunc("/carros/marcas/21/modelos/7940/anos/2022-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"Valor": "R$ 68.990,00",
			"Marca": "Fiat",
			"Modelo": "ARGO 1.0 6V Flex",
			"AnoModelo": 2022,
			"Combustivel": "Gasolina",
			"CodigoFipe": "001501-0",
			"MesReferencia": "setembro de 2026"
		}`))
	})
	return mux
}

func TestClient_Lookup(t *testing.T) {
	t.Run("percorre a cadeia e devolve a cotação", func(t *testing.T) {
		client := newTestClient(t, fipeAPI())

		quote, err := client.Lookup(context.Background(), "fiat", "argo", 2022)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if quote.Brand != "Fiat" {
			t.Errorf("esperava marca Fiat, obteve %q", quote.Brand)
		}
		if quote.FipeCode != "001501-0" {
			t.Errorf("esperava código 001501-0, obteve %q", quote.FipeCode)
		}
		if quote.Value.String() != "68990" {
			t.Errorf("esperava valor 68990, obteve %s", quote.Value)
		}
		if quote.Reference != "setembro de 2026" {
			t.Errorf("esperava referência setembro de 2026, obteve %q", quote.Reference)
		}
	})

	t.Run("marca desconhecida retorna ErrFipeNoMatch", func(t *testing.T) {
		client := newTestClient(t, fipeAPI())

		_, err := client.Lookup(context.Background(), "Lada", "Niva", 1990)
		if !errors.Is(err, domainerrors.ErrFipeNoMatch) {
			t.Errorf("esperava ErrFipeNoMatch, obteve %v", err)
		}
	})

	t.Run("ano inexistente retorna ErrFipeNoMatch", func(t *testing.T) {
		client := newTestClient(t, fipeAPI())

		_, err := client.Lookup(context.Background(), "Fiat", "Argo", 1999)
		if !errors.Is(err, domainerrors.ErrFipeNoMatch) {
			t.Errorf("esperava ErrFipeNoMatch, obteve %v", err)
		}
	})

	t.Run("erro HTTP da API vira ErrFipeUnreliable", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.Lookup(context.Background(), "Fiat", "Argo", 2022)
		if !errors.Is(err, domainerrors.ErrFipeUnreliable) {
			t.Errorf("esperava ErrFipeUnreliable, obteve %v", err)
		}
	})
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "R$ 43.294,00", want: "43294"},
		{raw: "R$ 1.234.567,89", want: "1234567.89"},
		{raw: "68990,50", want: "68990.5"},
		{raw: "", wantErr: true},
		{raw: "R$ ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCurrency(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("esperava erro para %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("esperava %s, obteve %s", tt.want, got)
			}
		})
	}
}
