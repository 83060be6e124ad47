package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/chipaflow-api/internal/application/analytics"
	"github.com/jhoicas/chipaflow-api/internal/application/demo"
	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/application/pos"
	"github.com/jhoicas/chipaflow-api/internal/application/reports"
	"github.com/jhoicas/chipaflow-api/internal/application/settings"
	"github.com/jhoicas/chipaflow-api/internal/application/system"
	"github.com/jhoicas/chipaflow-api/internal/application/usecase"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/metrics"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/chipaflow-api/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/chipaflow-api/internal/interfaces/http"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

type testServer struct {
	app      *fiber.App
	settings *settings.Service
	metrics  *metrics.Metrics
}

// newServer arma la API completa sobre repositorios en memoria con la demo cargada.
func newServer(t *testing.T, jwtSecret string) *testServer {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	productRepo := memory.NewProductRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	orderRepo := memory.NewPurchaseOrderRepository(store)
	transactionRepo := memory.NewTransactionRepository(store)
	_, err := demo.Seed(ctx, demo.Repositories{
		Products: productRepo, Suppliers: supplierRepo, PurchaseOrders: orderRepo, Transactions: transactionRepo,
	})
	require.NoError(t, err)

	settingsSvc := settings.NewService(memory.NewSettingsStore())
	_, err = settingsSvc.Init(ctx)
	require.NoError(t, err)

	m := metrics.New()
	productUC := usecase.NewProductUseCase(productRepo, memory.NewTxRunner(store))
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	purchaseUC := usecase.NewPurchaseOrderUseCase(orderRepo, supplierRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Settings:      settingsSvc,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		PurchaseUC:    purchaseUC,
		TransactionUC: transactionUC,
		SaleUC:        pos.NewSaleUseCase(memory.NewTxRunner(store), m, zerolog.Nop()),
		DashboardUC:   appanalytics.NewDashboardUseCase(productUC, purchaseUC, supplierUC, transactionUC),
		ReportsUC: reports.NewUseCase(productRepo, orderRepo, transactionRepo, transactionUC, map[string]reports.Renderer{
			reports.FormatPDF.Name:   pdf.NewReportRenderer(),
			reports.FormatExcel.Name: spreadsheet.NewRenderer(),
		}, "ChipaFlow"),
		CloudCheck: system.NewCloudCheck(nil, "", false, zerolog.Nop()),
		Metrics:    m,
		JWTSecret:  jwtSecret,
	})
	return &testServer{app: app, settings: settingsSvc, metrics: m}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestBootstrap_TemaPorDefectoDark(t *testing.T) {
	s := newServer(t, "")
	resp, body := s.do(t, http.MethodGet, "/api/shell/bootstrap?root=antialiased", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.BootstrapResponse](t, body)
	assert.Equal(t, "dark", out.Theme.Theme)
	assert.Equal(t, "antialiased dark", out.Theme.RootClass)
	assert.Equal(t, "João Silva", out.Profile.Nome)
	assert.False(t, out.Logo.Custom)
	require.Len(t, out.Navigation, 7)
	assert.True(t, out.Navigation[0].Exact)
	assert.Equal(t, "/configuracoes", out.Navigation[6].Href)
}

func TestTheme_SolicitaClientHint(t *testing.T) {
	s := newServer(t, "")
	for _, path := range []string{"/api/settings/theme", "/api/shell/bootstrap"} {
		resp, _ := s.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "Sec-CH-Prefers-Color-Scheme", resp.Header.Get("Accept-CH"), path)
		assert.Contains(t, resp.Header.Get("Vary"), "Sec-CH-Prefers-Color-Scheme", path)
	}
}

func TestTheme_SystemSigueAlSistemaOperativo(t *testing.T) {
	s := newServer(t, "")
	resp, _ := s.do(t, http.MethodPut, "/api/settings/theme", dto.UpdateThemeRequest{Theme: "system"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := s.do(t, http.MethodGet, "/api/settings/theme", nil, "Sec-CH-Prefers-Color-Scheme", "dark")
	assert.Equal(t, "dark", decode[dto.ThemeResponse](t, body).Applied)

	_, body = s.do(t, http.MethodGet, "/api/settings/theme?os=light", nil)
	out := decode[dto.ThemeResponse](t, body)
	assert.Equal(t, "system", out.Theme)
	assert.Equal(t, "light", out.RootClass)
}

func TestTheme_InvalidoYToggle(t *testing.T) {
	s := newServer(t, "")
	resp, body := s.do(t, http.MethodPut, "/api/settings/theme", dto.UpdateThemeRequest{Theme: "sepia"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_THEME", decode[dto.ErrorResponse](t, body).Code)

	_, body = s.do(t, http.MethodPost, "/api/settings/theme/toggle", nil)
	assert.Equal(t, "light", decode[dto.ThemeResponse](t, body).Theme)
}

func TestProducts_CreateInvalidoNoAgrega(t *testing.T) {
	s := newServer(t, "")
	resp, body := s.do(t, http.MethodPost, "/api/products", map[string]any{"name": "", "category": "Bebidas"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	_, body = s.do(t, http.MethodGet, "/api/products", nil)
	assert.Equal(t, 5, decode[dto.ProductListResponse](t, body).Total)
}

func TestProducts_CreateListaYFiltra(t *testing.T) {
	s := newServer(t, "")
	resp, body := s.do(t, http.MethodPost, "/api/products", map[string]any{
		"name": "Chipa Tradicional", "category": "Chipas", "stock": 30, "min_stock": 10, "price": "4.50", "cost": "1.80",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductCreatedResponse](t, body)
	assert.Equal(t, `Produto "Chipa Tradicional" adicionado com sucesso!`, created.Message)

	_, body = s.do(t, http.MethodGet, "/api/products?search=chipa", nil)
	list := decode[dto.ProductListResponse](t, body)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.Product.ID, list.Items[0].ID)
	assert.Contains(t, list.Categories, "Chipas")

	resp, _ = s.do(t, http.MethodGet, "/api/products/"+created.Product.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodDelete, "/api/products/"+created.Product.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/products/"+created.Product.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_RestockRecalculaCusto(t *testing.T) {
	s := newServer(t, "")
	_, body := s.do(t, http.MethodGet, "/api/products?search=molho", nil)
	id := decode[dto.ProductListResponse](t, body).Items[0].ID

	resp, body := s.do(t, http.MethodPost, "/api/products/"+id+"/restock", map[string]any{"quantity": 5, "unit_cost": "1.20"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decode[dto.ProductResponse](t, body)
	assert.Equal(t, 10, out.Stock)
	assert.Equal(t, "1.00", out.Cost.StringFixed(2))

	resp, _ = s.do(t, http.MethodPost, "/api/products/"+id+"/restock", map[string]any{"quantity": 0, "unit_cost": "1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPurchaseOrders_FornecedorDesconocido(t *testing.T) {
	s := newServer(t, "")
	resp, body := s.do(t, http.MethodPost, "/api/purchase-orders", dto.CreatePurchaseOrderRequest{
		SupplierID: "nao-existe", Date: "2024-01-10",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "SUPPLIER_NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)

	_, body = s.do(t, http.MethodGet, "/api/purchase-orders", nil)
	assert.Len(t, decode[[]dto.PurchaseOrderResponse](t, body), 3)
}

func TestPurchaseOrders_TransicionInvalida(t *testing.T) {
	s := newServer(t, "")
	id := demo.ID("purchase-order", 3) // entregue
	resp, body := s.do(t, http.MethodPatch, "/api/purchase-orders/"+id+"/status", dto.UpdateOrderStatusRequest{Status: "pendente"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", decode[dto.ErrorResponse](t, body).Code)
}

func TestLogo_RechazaNoImagen(t *testing.T) {
	s := newServer(t, "")
	resp, body := s.upload(t, "notas.txt", []byte("isto não é uma imagem"))
	require.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Equal(t, "Por favor, selecione um arquivo de imagem válido.", decode[dto.ErrorResponse](t, body).Message)

	_, body = s.do(t, http.MethodGet, "/api/settings/logo", nil)
	assert.False(t, decode[dto.LogoResponse](t, body).Custom)

	resp, body = s.upload(t, "logo.png", pngHeader)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(decode[dto.LogoResponse](t, body).Logo, "data:image/png;base64,"))
}

func (s *testServer) upload(t *testing.T, filename string, data []byte) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("logo", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/settings/logo", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func TestPDV_EstoqueInsuficiente(t *testing.T) {
	s := newServer(t, "")
	refri := demo.ID("product", 3) // stock 8
	resp, body := s.do(t, http.MethodPost, "/api/pdv/sales", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: refri, Quantity: 9}},
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, body).Code)

	_, body = s.do(t, http.MethodGet, "/api/products/"+refri, nil)
	assert.Equal(t, 8, decode[dto.ProductResponse](t, body).Stock)

	resp, _ = s.do(t, http.MethodPost, "/api/pdv/sales", dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: refri, Quantity: 2}}, PaymentMethod: "pix",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, body = s.do(t, http.MethodGet, "/metrics", nil)
	assert.Contains(t, string(body), `chipaflow_pdv_sales_total{method="pix"} 1`)
}

func TestDashboardYFinanceiro(t *testing.T) {
	s := newServer(t, "")
	resp, body := s.do(t, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.DashboardSummaryDTO](t, body)
	assert.Equal(t, 5, summary.TotalProducts)
	assert.Equal(t, 3, summary.ActiveSuppliers)
	assert.NotEmpty(t, summary.DateLabel)

	resp, body = s.do(t, http.MethodGet, "/api/finance/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2024-01", decode[dto.FinanceSummaryDTO](t, body).Period)
}

func TestReports_Descarga(t *testing.T) {
	s := newServer(t, "")
	_, body := s.do(t, http.MethodGet, "/api/reports", nil)
	assert.Len(t, decode[[]dto.ReportDTO](t, body), 4)

	resp, body := s.do(t, http.MethodGet, "/api/reports/estoque?format=excel", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.ms-excel", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "relatorio-estoque-")
	assert.Contains(t, string(body), "Workbook")

	resp, _ = s.do(t, http.MethodGet, "/api/reports/estoque?format=docx", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/reports/inexistente", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCloudCheck_SinConfigurar(t *testing.T) {
	s := newServer(t, "")
	_, body := s.do(t, http.MethodGet, "/api/system/cloud-check", nil)
	out := decode[dto.CloudCheckResponse](t, body)
	assert.False(t, out.Connected)
	assert.Equal(t, "❌ URL do Supabase não configurada", out.Message)
}

func TestCatchAll404(t *testing.T) {
	s := newServer(t, "")
	resp, body := s.do(t, http.MethodGet, "/api/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)
}

func TestWriteGuard(t *testing.T) {
	s := newServer(t, testJWTSecret)

	resp, _ := s.do(t, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "lecturas sin token")

	resp, _ = s.do(t, http.MethodPost, "/api/settings/theme/toggle", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/settings/theme/toggle", nil, "Authorization", tokenForRole(t, "operador"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/api/settings/theme/toggle", nil, "Authorization", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
