package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"DF-DSGNR/internal/compiler"
	"DF-DSGNR/internal/design"
	"DF-DSGNR/internal/designer"
	"DF-DSGNR/internal/generator"
	"DF-DSGNR/internal/models"
	"DF-DSGNR/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionsHandler struct {
	sessions  *services.SessionService
	templates *services.TemplateService
}

func NewSessionsHandler(sessions *services.SessionService, templates *services.TemplateService) *SessionsHandler {
	return &SessionsHandler{
		sessions:  sessions,
		templates: templates,
	}
}

// SessionState is the editor-facing snapshot returned after every session
// operation. The design document inside keeps its own field names.
type SessionState struct {
	SessionID   string        `json:"session_id"`
	TemplateID  string        `json:"template_id,omitempty"`
	Design      design.Design `json:"design"`
	SelectedIDs []string      `json:"selected_ids"`
	Zoom        float64       `json:"zoom"`
	Dirty       bool          `json:"dirty"`
	ShowGrid    bool          `json:"show_grid"`
	SnapToGrid  bool          `json:"snap_to_grid"`
	GridSize    float64       `json:"grid_size"`
	CanUndo     bool          `json:"can_undo"`
	CanRedo     bool          `json:"can_redo"`
}

func sessionState(session *services.Session, st *designer.State) SessionState {
	return SessionState{
		SessionID:   session.ID,
		TemplateID:  session.TemplateID,
		Design:      st.GetDesign(),
		SelectedIDs: st.SelectedIDs(),
		Zoom:        st.Zoom(),
		Dirty:       st.Dirty(),
		ShowGrid:    st.GridVisible(),
		SnapToGrid:  st.SnapEnabled(),
		GridSize:    st.GridSize(),
		CanUndo:     st.CanUndo(),
		CanRedo:     st.CanRedo(),
	}
}

func (h *SessionsHandler) snapshot(session *services.Session) SessionState {
	var state SessionState
	session.Do(func(st *designer.State) {
		state = sessionState(session, st)
	})
	return state
}

func (h *SessionsHandler) lookup(c *gin.Context) (*services.Session, bool) {
	session, ok := h.sessions.Get(c.Param("sessionId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return nil, false
	}
	return session, true
}

type OpenSessionRequest struct {
	TemplateID string  `json:"template_id"`
	PageWidth  float64 `json:"page_width"`
}

func (h *SessionsHandler) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
	}

	var d design.Design
	if req.TemplateID != "" {
		var err error
		d, err = h.templates.DesignFor(req.TemplateID, req.PageWidth)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
	} else {
		width := req.PageWidth
		if width <= 0 {
			width = design.DefaultPage().Width
		}
		d = generator.Generate(generator.DefaultFlags(), width)
	}

	session := h.sessions.Open(req.TemplateID, d)
	c.JSON(http.StatusOK, h.snapshot(session))
}

func (h *SessionsHandler) GetSession(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.snapshot(session))
}

func (h *SessionsHandler) CloseSession(c *gin.Context) {
	h.sessions.Close(c.Param("sessionId"))
	c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}

type AddElementRequest struct {
	Kind      design.ElementKind     `json:"kind"`
	Overrides *designer.ElementPatch `json:"overrides"`
}

func (h *SessionsHandler) AddElement(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var req AddElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var id string
	var state SessionState
	session.Do(func(st *designer.State) {
		id = st.AddElement(req.Kind, req.Overrides)
		state = sessionState(session, st)
	})

	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown element kind: %s", req.Kind)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"element_id": id, "state": state})
}

func (h *SessionsHandler) UpdateElement(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var patch designer.ElementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.UpdateElement(c.Param("elementId"), patch)
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) UpdateElementStyles(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var patch designer.StylePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.UpdateElementStyles(c.Param("elementId"), patch)
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) DeleteElement(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.DeleteElement(c.Param("elementId"))
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) DeleteSelectedElements(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.DeleteSelectedElements()
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) DuplicateElement(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var id string
	var state SessionState
	session.Do(func(st *designer.State) {
		id = st.DuplicateElement(c.Param("elementId"))
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, gin.H{"element_id": id, "state": state})
}

func (h *SessionsHandler) MoveElementToFront(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.MoveElementToFront(c.Param("elementId"))
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) MoveElementToBack(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.MoveElementToBack(c.Param("elementId"))
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

type SelectElementRequest struct {
	ID       string `json:"id"`
	Additive bool   `json:"additive"`
}

func (h *SessionsHandler) SelectElement(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var req SelectElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.SelectElement(req.ID, req.Additive)
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) ClearSelection(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.ClearSelection()
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

type SetZoomRequest struct {
	Zoom float64 `json:"zoom"`
}

func (h *SessionsHandler) SetZoom(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var req SetZoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.SetZoom(req.Zoom)
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) ToggleGrid(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.ToggleGrid()
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) ToggleSnap(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.ToggleSnapToGrid()
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) UpdatePageSetup(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var patch designer.PagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.UpdatePageSetup(patch)
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) UpdateGlobalStyles(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var patch designer.GlobalStylesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.UpdateGlobalStyles(patch)
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

func (h *SessionsHandler) Undo(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var applied bool
	var state SessionState
	session.Do(func(st *designer.State) {
		applied = st.Undo()
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, gin.H{"applied": applied, "state": state})
}

func (h *SessionsHandler) Redo(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var applied bool
	var state SessionState
	session.Do(func(st *designer.State) {
		applied = st.Redo()
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, gin.H{"applied": applied, "state": state})
}

type LoadDesignRequest struct {
	Design json.RawMessage `json:"design"`
}

func (h *SessionsHandler) LoadDesign(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var req LoadDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if len(req.Design) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Design document is required"})
		return
	}

	d, err := design.ImportDesign(string(req.Design))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		st.LoadDesign(d)
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, state)
}

type SaveSessionRequest struct {
	Name        string           `json:"name"`
	VoucherType string           `json:"voucher_type"`
	Settings    *generator.Flags `json:"settings"`
}

func (h *SessionsHandler) SaveSession(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var req SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template name is required"})
		return
	}
	if !models.IsAllowedVoucherType(req.VoucherType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown voucher type"})
		return
	}

	flags := generator.DefaultFlags()
	if req.Settings != nil {
		flags = *req.Settings
	}

	var d design.Design
	var templateID string
	session.Do(func(st *designer.State) {
		d = st.GetDesign()
		templateID = session.TemplateID
	})

	template, err := h.templates.SaveTemplate(templateID, req.Name, req.VoucherType, d, flags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save template"})
		return
	}

	var state SessionState
	session.Do(func(st *designer.State) {
		session.TemplateID = template.ID
		st.MarkClean()
		state = sessionState(session, st)
	})

	c.JSON(http.StatusOK, gin.H{"template": template, "state": state})
}

// PreviewSession compiles the current editing state into a standalone
// preview page without touching the stored template.
func (h *SessionsHandler) PreviewSession(c *gin.Context) {
	session, ok := h.lookup(c)
	if !ok {
		return
	}

	var html string
	session.Do(func(st *designer.State) {
		html = compiler.PreviewDocument(st.GetDesign())
	})

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
