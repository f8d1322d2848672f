package explain

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/nirbhik/walletgpt/backend/internal/model/chat"
	walletmodel "github.com/nirbhik/walletgpt/backend/internal/model/wallet"
	"github.com/nirbhik/walletgpt/backend/internal/service/ai"
	"github.com/nirbhik/walletgpt/backend/pkg/utils"
)

// Reference error strings. Clients match on these, keep them stable.
const (
	msgMissingWallet = "Missing wallet data (address or balance)."
	msgMissingAPIKey = "Server missing OPENAI_API_KEY env variable."
	msgBadRequest    = "Bad request in /api/explain."
)

// Explainer generates a reply for one wallet conversation.
type Explainer interface {
	Explain(ctx context.Context, snapshot walletmodel.Snapshot, history []chat.Turn) (string, error)
}

// Handler serves POST /api/explain.
type Handler struct {
	// svc is nil when no completion credential was configured at startup;
	// every otherwise-valid request then gets a 500.
	svc Explainer
}

// New creates the explain handler.
func New(svc Explainer) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the explain route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/explain", h.handleExplain)
}

func (h *Handler) handleExplain(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Wallet   *walletmodel.Snapshot `json:"wallet"`
		Messages []chat.Turn           `json:"messages"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	if payload.Wallet == nil || !payload.Wallet.Valid() {
		utils.RespondError(w, http.StatusBadRequest, msgMissingWallet)
		return
	}

	if h.svc == nil {
		utils.RespondError(w, http.StatusInternalServerError, msgMissingAPIKey)
		return
	}

	reply, err := h.svc.Explain(r.Context(), *payload.Wallet, payload.Messages)
	if err != nil {
		var upstream *ai.UpstreamError
		if errors.As(err, &upstream) {
			// Upstream status and body are forwarded verbatim.
			log.Printf("[explain] completion provider error: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, upstream.Error())
			return
		}
		log.Printf("[explain] request failed: %v", err)
		utils.RespondError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
