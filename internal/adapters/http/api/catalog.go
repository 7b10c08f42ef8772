package api

import (
	"net/http"

	"github.com/okian/giftmatch/internal/domain/catalog"
	"github.com/okian/giftmatch/internal/domain/types"
)

// catalogResponse is the reference data a client needs to render the survey.
type catalogResponse struct {
	Questions     []catalog.Question `json:"questions"`
	Teams         []types.Team       `json:"teams"`
	Opportunities []opportunityEntry `json:"opportunities"`
	Passions      []catalog.Choice   `json:"passions"`
	Skills        []catalog.Choice   `json:"skills"`
}

type opportunityEntry struct {
	types.Opportunity
	URL string `json:"url"`
}

// CatalogHandler serves the static catalog. The response is built once.
type CatalogHandler struct {
	body catalogResponse
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	opps := c.Opportunities()
	entries := make([]opportunityEntry, 0, len(opps))
	for _, o := range opps {
		entries = append(entries, opportunityEntry{Opportunity: o, URL: c.OpportunityURL(o.ID)})
	}
	return &CatalogHandler{body: catalogResponse{
		Questions:     c.Questions(),
		Teams:         c.Teams(),
		Opportunities: entries,
		Passions:      c.PassionChoices(),
		Skills:        c.SkillChoices(),
	}}
}

// HandleCatalog handles GET /catalog requests.
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.body)
}
