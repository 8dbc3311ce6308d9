package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	brandservice "agencyx/contexts/campaign-studio/brand-service"
	brandhttp "agencyx/contexts/campaign-studio/brand-service/transport/http"
	orchestratorservice "agencyx/contexts/campaign-studio/orchestrator-service"
	"agencyx/contexts/campaign-studio/orchestrator-service/adapters/finance"
	campaignhttp "agencyx/contexts/campaign-studio/orchestrator-service/transport/http"
	templateservice "agencyx/contexts/campaign-studio/template-service"
	templatehttp "agencyx/contexts/campaign-studio/template-service/transport/http"
	creditledgerservice "agencyx/contexts/finance-core/credit-ledger-service"
	ledgerhttp "agencyx/contexts/finance-core/credit-ledger-service/transport/http"
)

type testEnv struct {
	server    *httptest.Server
	templates templateservice.Module
}

func newTestEnv(t *testing.T, seedCredits map[string]int) *testEnv {
	t.Helper()

	ledger := creditledgerservice.NewInMemoryModule(seedCredits, nil)
	bridge := finance.LedgerAdapter{Service: ledger.Service}
	orchestrator := orchestratorservice.NewInMemoryModule(bridge, nil)
	brand := brandservice.NewInMemoryModule(nil)
	templates := templateservice.NewInMemoryModule(bridge, nil)

	server := httptest.NewServer(New(orchestrator, ledger, brand, templates, nil, "").Handler())
	t.Cleanup(server.Close)
	return &testEnv{server: server, templates: templates}
}

func (e *testEnv) do(t *testing.T, method string, path string, userID string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, raw
}

func decodeInto(t *testing.T, raw []byte, target any) {
	t.Helper()
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %s: %v", raw, err)
	}
}

func TestGenerateCampaignEndToEnd(t *testing.T) {
	env := newTestEnv(t, map[string]int{"user-1": 3})

	resp, raw := env.do(t, http.MethodPost, "/v1/campaigns/generate", "user-1", campaignhttp.GenerateCampaignRequest{
		RawUserInput: "Diwali sale 20% off on all sweets",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var generated campaignhttp.GenerateCampaignResponse
	decodeInto(t, raw, &generated)
	if generated.CampaignID == "" {
		t.Fatal("expected campaign id")
	}
	if generated.Blueprint.CampaignTitle == "" {
		t.Fatal("expected blueprint title")
	}
	if generated.AgentPipeline.Intent.Classification == "" {
		t.Fatal("expected pipeline trace")
	}

	resp, raw = env.do(t, http.MethodGet, "/v1/campaigns", "user-1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from gallery, got %d: %s", resp.StatusCode, raw)
	}
	var gallery campaignhttp.CampaignListResponse
	decodeInto(t, raw, &gallery)
	if len(gallery.Items) != 1 || gallery.Items[0].CampaignID != generated.CampaignID {
		t.Fatalf("expected the generated campaign in the gallery, got %+v", gallery.Items)
	}

	resp, raw = env.do(t, http.MethodGet, "/v1/campaigns/"+generated.CampaignID, "user-1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from detail, got %d: %s", resp.StatusCode, raw)
	}

	// Another user's lookup reads as not found.
	resp, _ = env.do(t, http.MethodGet, "/v1/campaigns/"+generated.CampaignID, "user-2", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign campaign, got %d", resp.StatusCode)
	}

	// One credit spent.
	resp, raw = env.do(t, http.MethodGet, "/v1/credits/user-1/balance", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from balance, got %d: %s", resp.StatusCode, raw)
	}
	var balance ledgerhttp.BalanceResponse
	decodeInto(t, raw, &balance)
	if balance.Balance != 2 {
		t.Fatalf("expected balance 2, got %d", balance.Balance)
	}
}

func TestGenerateCampaignRequiresIdentityHeader(t *testing.T) {
	env := newTestEnv(t, map[string]int{"user-1": 3})

	resp, raw := env.do(t, http.MethodPost, "/v1/campaigns/generate", "", campaignhttp.GenerateCampaignRequest{
		RawUserInput: "promote my bakery",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	var errResp campaignhttp.ErrorResponse
	decodeInto(t, raw, &errResp)
	if errResp.Code != "missing_user" {
		t.Fatalf("expected missing_user, got %q", errResp.Code)
	}
}

func TestGenerateCampaignInsufficientCredits(t *testing.T) {
	env := newTestEnv(t, map[string]int{"user-1": 0})

	resp, raw := env.do(t, http.MethodPost, "/v1/campaigns/generate", "user-1", campaignhttp.GenerateCampaignRequest{
		RawUserInput: "promote my bakery",
	})
	if resp.StatusCode != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d: %s", resp.StatusCode, raw)
	}
	var errResp campaignhttp.ErrorResponse
	decodeInto(t, raw, &errResp)
	if errResp.Code != "insufficient_credits" {
		t.Fatalf("expected insufficient_credits, got %q", errResp.Code)
	}
}

func TestAgentEndpoints(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, raw := env.do(t, http.MethodPost, "/v1/agents/intent", "", campaignhttp.IntentRequest{
		RawUserInput: "Diwali sale 20% off",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from intent agent, got %d: %s", resp.StatusCode, raw)
	}
	var intent struct {
		Classification string `json:"intent_classification"`
	}
	decodeInto(t, raw, &intent)
	if intent.Classification == "" {
		t.Fatal("expected an intent classification")
	}

	resp, raw = env.do(t, http.MethodPost, "/v1/agents/strategy", "", campaignhttp.StrategyRequest{
		RawUserInput: "   ",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank strategy input, got %d: %s", resp.StatusCode, raw)
	}
	var errResp campaignhttp.ErrorResponse
	decodeInto(t, raw, &errResp)
	if errResp.Code != "invalid_request" {
		t.Fatalf("expected invalid_request, got %q", errResp.Code)
	}
}

func TestInspirationUploadEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, raw := env.do(t, http.MethodPost, "/v1/campaigns/inspiration-uploads", "user-1", campaignhttp.InspirationUploadRequest{
		FileName: "reference.png",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var upload campaignhttp.InspirationUploadResponse
	decodeInto(t, raw, &upload)
	if upload.UploadURL == "" || upload.ObjectPath == "" {
		t.Fatalf("expected presigned upload, got %+v", upload)
	}

	resp, raw = env.do(t, http.MethodPost, "/v1/campaigns/inspiration-uploads", "user-1", campaignhttp.InspirationUploadRequest{
		FileName: "reference.tiff",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported extension, got %d: %s", resp.StatusCode, raw)
	}
}

func TestBrandProfileRoundTrip(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, raw := env.do(t, http.MethodPut, "/v1/brand", "user-1", brandhttp.UpsertBrandRequest{
		Name:         "Mithai House",
		PrimaryColor: "#D97706",
		Industry:     "confectionery",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}

	resp, raw = env.do(t, http.MethodGet, "/v1/brand", "user-1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var brand brandhttp.BrandResponse
	decodeInto(t, raw, &brand)
	if brand.Name != "Mithai House" {
		t.Fatalf("unexpected brand %+v", brand)
	}

	resp, _ = env.do(t, http.MethodGet, "/v1/brand", "user-2", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing profile, got %d", resp.StatusCode)
	}
}

func TestTemplateUploadAndRewardFlow(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, raw := env.do(t, http.MethodPost, "/v1/templates/uploads", "user-1", templatehttp.RequestUploadRequest{
		Title:    "Diwali Poster",
		Niche:    "sweets",
		FileName: "poster.png",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var upload templatehttp.RequestUploadResponse
	decodeInto(t, raw, &upload)

	// Confirming before the asset lands is rejected.
	resp, raw = env.do(t, http.MethodPost, "/v1/templates/"+upload.TemplateID+"/confirm", "user-1", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for missing asset, got %d: %s", resp.StatusCode, raw)
	}

	env.templates.Store.PutObject(upload.AssetPath)

	resp, raw = env.do(t, http.MethodPost, "/v1/templates/"+upload.TemplateID+"/confirm", "user-1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var confirmed templatehttp.ConfirmUploadResponse
	decodeInto(t, raw, &confirmed)
	if confirmed.Template.Status != "stored" {
		t.Fatalf("expected stored template, got %q", confirmed.Template.Status)
	}

	// The uploader reward is visible on the ledger.
	resp, raw = env.do(t, http.MethodGet, "/v1/credits/user-1/balance", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from balance, got %d: %s", resp.StatusCode, raw)
	}
	var balance ledgerhttp.BalanceResponse
	decodeInto(t, raw, &balance)
	if balance.Balance != confirmed.RewardCredits {
		t.Fatalf("expected balance %d after reward, got %d", confirmed.RewardCredits, balance.Balance)
	}

	// Repeat confirms do not grant twice.
	resp, _ = env.do(t, http.MethodPost, "/v1/templates/"+upload.TemplateID+"/confirm", "user-1", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for repeated confirm, got %d", resp.StatusCode)
	}

	resp, raw = env.do(t, http.MethodGet, "/v1/templates?niche=sweets", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from template list, got %d: %s", resp.StatusCode, raw)
	}
	var list templatehttp.TemplateListResponse
	decodeInto(t, raw, &list)
	if len(list.Items) != 1 {
		t.Fatalf("expected one stored template, got %d", len(list.Items))
	}
	if list.Items[0].DownloadURL == "" {
		t.Fatal("expected listed template to carry a download url")
	}
}

func TestCreditGrantEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, raw := env.do(t, http.MethodPost, "/v1/credits/user-9/grant", "", ledgerhttp.GrantCreditsRequest{
		Amount: 5,
		Reason: "promo",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var grant ledgerhttp.GrantCreditsResponse
	decodeInto(t, raw, &grant)
	if grant.Balance != 5 {
		t.Fatalf("expected balance 5, got %d", grant.Balance)
	}

	resp, raw = env.do(t, http.MethodGet, "/v1/credits/user-9/transactions", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var history ledgerhttp.TransactionHistoryResponse
	decodeInto(t, raw, &history)
	if len(history.Items) != 1 || history.Items[0].Type != "credit" {
		t.Fatalf("expected one credit transaction, got %+v", history.Items)
	}
}
