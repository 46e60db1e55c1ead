package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/careerfolio/backend/internal/models"
	"github.com/careerfolio/backend/internal/services"
	"github.com/careerfolio/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// The profile endpoint speaks one envelope, discriminated by the presence of
// "section". The (section, action, operation) triple is resolved here, once,
// into a typed service call; nothing below this file compares strings.
type Envelope struct {
	Action    string `json:"action"`
	Section   string `json:"section"`
	Operation string `json:"operation"`
	Token     string `json:"token"`
	ID        string `json:"id"`
}

const (
	actionFetch  = "fetch"
	actionUpdate = "update"
	actionLogout = "logout"

	opAdd    = "add"
	opDelete = "delete"
	opSave   = "save"
)

type ProfileHandler struct {
	auth     services.AuthService
	profile  services.ProfileService
	sections services.SectionService
}

func NewProfileHandler(auth services.AuthService, profile services.ProfileService, sections services.SectionService) *ProfileHandler {
	return &ProfileHandler{auth: auth, profile: profile, sections: sections}
}

// Fetch serves the GET variant: the full aggregate profile for a single page
// load. The token rides in the query string or the Authorization header.
func (h *ProfileHandler) Fetch(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	userID, err := h.auth.ValidateToken(ctx, token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("user_id", userID)

	agg, err := h.profile.Aggregate(ctx, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, http.StatusOK, agg)
}

func (h *ProfileHandler) Post(c *gin.Context) {
	const op = "ProfileHandler.Post"

	body, err := c.GetRawData()
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "failed to read request body", err))
		return
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	// Logout never validates first: revoking an already-dead token succeeds.
	if env.Section == "" && env.Action == actionLogout {
		if err := h.auth.Logout(ctx, env.Token); err != nil {
			writeError(c, err)
			return
		}
		writeMessage(c, http.StatusOK, "logged out")
		return
	}

	userID, err := h.auth.ValidateToken(ctx, env.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("user_id", userID)

	if env.Section == "" {
		h.plainProfile(c, userID, env, body)
		return
	}
	h.section(c, userID, env, body)
}

func (h *ProfileHandler) plainProfile(c *gin.Context, userID string, env Envelope, body []byte) {
	const op = "ProfileHandler.Profile"

	ctx, cancel := requestCtx(c)
	defer cancel()

	switch env.Action {
	case actionFetch:
		agg, err := h.profile.Aggregate(ctx, userID)
		if err != nil {
			writeError(c, err)
			return
		}
		writeOK(c, http.StatusOK, agg)

	case actionUpdate:
		var p models.Profile
		if err := json.Unmarshal(body, &p); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid profile payload", err))
			return
		}
		out, err := h.profile.Update(ctx, userID, &p)
		if err != nil {
			writeError(c, err)
			return
		}
		writeOK(c, http.StatusOK, out)

	default:
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unknown action", nil))
	}
}

// multiOperation applies the documented default: an update on a multi-record
// section with no operation is an add. The old API inherited this silently;
// here it is explicit.
func multiOperation(env Envelope) string {
	if env.Operation == "" {
		return opAdd
	}
	return env.Operation
}

func (h *ProfileHandler) section(c *gin.Context, userID string, env Envelope, body []byte) {
	const op = "ProfileHandler.Section"

	ctx, cancel := requestCtx(c)
	defer cancel()

	if env.Action != actionFetch && env.Action != actionUpdate {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unknown action", nil))
		return
	}
	fetch := env.Action == actionFetch

	switch env.Section {
	case "about":
		if fetch {
			a, err := h.sections.GetAbout(ctx, userID)
			respond(c, a, err)
			return
		}
		if !singletonSave(c, op, env) {
			return
		}
		var a models.About
		if !decode(c, op, body, &a) {
			return
		}
		out, err := h.sections.SaveAbout(ctx, userID, &a)
		respond(c, out, err)

	case "portfolio":
		if fetch {
			p, err := h.sections.GetPortfolio(ctx, userID)
			respond(c, p, err)
			return
		}
		if !singletonSave(c, op, env) {
			return
		}
		var p models.Portfolio
		if !decode(c, op, body, &p) {
			return
		}
		out, err := h.sections.SavePortfolio(ctx, userID, &p)
		respond(c, out, err)

	case "skills":
		if fetch {
			sk, err := h.sections.GetSkills(ctx, userID)
			respond(c, sk, err)
			return
		}
		if !singletonSave(c, op, env) {
			return
		}
		var sk models.Skills
		if !decode(c, op, body, &sk) {
			return
		}
		out, err := h.sections.SaveSkills(ctx, userID, &sk)
		respond(c, out, err)

	case "education":
		if fetch {
			list, err := h.sections.ListEducation(ctx, userID)
			respond(c, list, err)
			return
		}
		switch multiOperation(env) {
		case opAdd:
			var e models.Education
			if !decode(c, op, body, &e) {
				return
			}
			id, err := h.sections.AddEducation(ctx, userID, &e)
			respondID(c, id, err)
		case opDelete:
			respondDeleted(c, h.sections.DeleteEducation(ctx, userID, env.ID))
		default:
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "unknown operation", nil))
		}

	case "experience":
		if fetch {
			list, err := h.sections.ListExperience(ctx, userID)
			respond(c, list, err)
			return
		}
		switch multiOperation(env) {
		case opAdd:
			var e models.Experience
			if !decode(c, op, body, &e) {
				return
			}
			id, err := h.sections.AddExperience(ctx, userID, &e)
			respondID(c, id, err)
		case opDelete:
			respondDeleted(c, h.sections.DeleteExperience(ctx, userID, env.ID))
		default:
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "unknown operation", nil))
		}

	case "projects":
		if fetch {
			list, err := h.sections.ListProjects(ctx, userID)
			respond(c, list, err)
			return
		}
		switch multiOperation(env) {
		case opAdd:
			var p models.Project
			if !decode(c, op, body, &p) {
				return
			}
			id, err := h.sections.AddProject(ctx, userID, &p)
			respondID(c, id, err)
		case opDelete:
			respondDeleted(c, h.sections.DeleteProject(ctx, userID, env.ID))
		default:
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "unknown operation", nil))
		}

	case "certifications":
		if fetch {
			list, err := h.sections.ListCertifications(ctx, userID)
			respond(c, list, err)
			return
		}
		switch multiOperation(env) {
		case opAdd:
			var cert models.Certification
			if !decode(c, op, body, &cert) {
				return
			}
			id, err := h.sections.AddCertification(ctx, userID, &cert)
			respondID(c, id, err)
		case opDelete:
			respondDeleted(c, h.sections.DeleteCertification(ctx, userID, env.ID))
		default:
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "unknown operation", nil))
		}

	default:
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unknown section", nil))
	}
}

// singletonSave allows an absent operation or an explicit "save" on the
// single-valued sections; anything else is rejected.
func singletonSave(c *gin.Context, op string, env Envelope) bool {
	if env.Operation != "" && env.Operation != opSave {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "unknown operation", nil))
		return false
	}
	return true
}

func decode(c *gin.Context, op string, body []byte, dst any) bool {
	if err := json.Unmarshal(body, dst); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid section payload", err))
		return false
	}
	return true
}

func respond[T any](c *gin.Context, data T, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, http.StatusOK, data)
}

func respondID(c *gin.Context, id string, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	writeOK(c, http.StatusOK, gin.H{"id": id})
}

func respondDeleted(c *gin.Context, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "deleted")
}
