package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// setupTestLocales cria arquivos de locale temporários para testes
func setupTestLocales(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	ptContent := `{
  "error.not_found.detail": "{{.Resource}} não encontrado",
  "error.vehicle_not_for_sale": "Veículo não está disponível para venda",
  "error.sale_not_found": "Venda não encontrada"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "pt-BR.json"), []byte(ptContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create pt-BR.json: %v", err)
	}

	enContent := `{
  "error.not_found.detail": "{{.Resource}} not found",
  "error.vehicle_not_for_sale": "Vehicle is not available for sale"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(enContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create en.json: %v", err)
	}

	return tmpDir
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		service, err := NewService(tmpDir, "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "pt-BR" {
			t.Errorf("esperava idioma padrão 'pt-BR', obteve '%s'", service.GetDefaultLanguage())
		}

		if langs := service.GetSupportedLanguages(); len(langs) != 2 {
			t.Errorf("esperava 2 idiomas suportados, obteve %d", len(langs))
		}
	})

	t.Run("erro quando diretório não existe", func(t *testing.T) {
		_, err := NewService("/diretorio/inexistente", "pt-BR")
		if err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		_, err := NewService(tmpDir, "es")
		if err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})
}

func TestService_T(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz mensagem simples em português", func(t *testing.T) {
		result := service.T("pt-BR", "error.vehicle_not_for_sale")
		expected := "Veículo não está disponível para venda"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem simples em inglês", func(t *testing.T) {
		result := service.T("en", "error.vehicle_not_for_sale")
		expected := "Vehicle is not available for sale"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem com parâmetros", func(t *testing.T) {
		result := service.T("pt-BR", "error.not_found.detail", map[string]interface{}{"Resource": "Veículo"})
		expected := "Veículo não encontrado"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("fallback para idioma padrão quando chave não existe no idioma solicitado", func(t *testing.T) {
		result := service.T("en", "error.sale_not_found")
		expected := "Venda não encontrada"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("retorna chave quando tradução não existe", func(t *testing.T) {
		result := service.T("pt-BR", "chave.inexistente")
		expected := "chave.inexistente"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	tests := []struct {
		lang     string
		expected bool
	}{
		{"pt-BR", true},
		{"en", true},
		{"es", false},
		{"fr", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := service.IsLanguageSupported(tt.lang)
			if result != tt.expected {
				t.Errorf("para idioma '%s', esperava %v, obteve %v", tt.lang, tt.expected, result)
			}
		})
	}
}

func TestService_ThreadSafety(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "error.not_found.detail", map[string]interface{}{"Resource": "Venda"})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("en", "error.vehicle_not_for_sale")
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("pt-BR")
		}()
	}

	// Falha com -race se houver escrita concorrente
	wg.Wait()
}
