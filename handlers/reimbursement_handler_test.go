package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pacifictrucking/models"
	"pacifictrucking/repository"
)

type fakeReimbursementRepo struct {
	byID map[string]*models.Reimbursement
}

func newFakeReimbursementRepo() *fakeReimbursementRepo {
	return &fakeReimbursementRepo{byID: map[string]*models.Reimbursement{}}
}

func (r *fakeReimbursementRepo) CreateReimbursement(rb *models.Reimbursement) error {
	r.byID[rb.ID] = rb
	return nil
}

func (r *fakeReimbursementRepo) GetReimbursements(filters map[string]interface{}) ([]*models.Reimbursement, error) {
	var out []*models.Reimbursement
	for _, rb := range r.byID {
		out = append(out, rb)
	}
	return out, nil
}

func (r *fakeReimbursementRepo) Liquidate(id string, liquidatedBy string, now time.Time) (*models.Reimbursement, error) {
	rb, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrReimbursementNotFound
	}
	if rb.Status != models.ReimbursementPending {
		return nil, repository.ErrReimbursementNotPending
	}
	rb.Status = models.ReimbursementLiquidated
	rb.LiquidatedBy = &liquidatedBy
	rb.LiquidatedAt = &now
	return rb, nil
}

func postLiquidate(h *ReimbursementHandler, id, role string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"liquidated_by": "usr-1"})
	req := httptest.NewRequest(http.MethodPost, "/reimbursements/liquidate?id="+id, bytes.NewReader(body))
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}
	rec := httptest.NewRecorder()
	h.Liquidate(rec, req)
	return rec
}

func TestLiquidateStatusMapping(t *testing.T) {
	repo := newFakeReimbursementRepo()
	repo.byID["rb-1"] = &models.Reimbursement{
		ID:         "rb-1",
		Category:   models.CategoryFuel,
		Amount:     3000,
		CreditedTo: "Owner A",
		Status:     models.ReimbursementPending,
		Date:       time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	h := &ReimbursementHandler{Repo: repo}

	// non-admin rejected before any lookup
	rec := postLiquidate(h, "rb-1", "accounting")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// unknown id is a 404, not a 500
	rec = postLiquidate(h, "rb-missing", "admin")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postLiquidate(h, "rb-1", "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ReimbursementLiquidated, repo.byID["rb-1"].Status)

	// second liquidation hits the Pending guard
	rec = postLiquidate(h, "rb-1", "admin")
	assert.Equal(t, http.StatusConflict, rec.Code)
}
