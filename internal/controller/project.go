package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/mailer"
	"github.com/scribearc/scribearc/internal/model"
	"github.com/scribearc/scribearc/internal/queue"
	"github.com/scribearc/scribearc/internal/util"
	"github.com/scribearc/scribearc/pkg/scribearc"
	"gorm.io/gorm"
)

type ProjectController struct {
	*baseController
}

type intakeRequest struct {
	ClientID     string        `json:"clientId" binding:"required"`
	PackageID    string        `json:"packageId" binding:"required"`
	Title        string        `json:"title" binding:"required,strNotEmpty,max=150"`
	Deadline     time.Time     `json:"deadline" binding:"required"`
	Requirements model.JSONMap `json:"requirements"`

	// amounts in cents
	AgreedPrice       int64 `json:"agreedPrice" binding:"required,gt=0"`
	DiscountAmount    int64 `json:"discountAmount" binding:"gte=0"`
	AdditionalCharges int64 `json:"additionalCharges" binding:"gte=0"`
}

// Intake accepts a new project request from a registered client. It mints the
// reference code and tracking secret, computes the revenue split and writes
// the project with its project_created history entry in one transaction. A
// reference code generation failure aborts the whole intake.
func (pc ProjectController) Intake(ctx *gin.Context) {
	var body intakeRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if !body.Deadline.After(time.Now()) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Deadline must be in the future", nil, nil)
		return
	}

	client, err := pc.app.Repository.Client.GetById(ctx, nil, body.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown client", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to resolve intake client: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	pkg, err := pc.app.Repository.Package.GetById(ctx, nil, body.PackageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown service package", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to resolve intake package: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if !pkg.IsActive {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Service package is no longer offered", nil, nil)
		return
	}

	if err := validateRequirements(body.Requirements, pkg.RequirementSchema); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err, "requirements"), nil)
		return
	}

	writerShare, adminShare, err := scribearc.ComputeSplit(body.AgreedPrice, body.DiscountAmount, body.AdditionalCharges)
	if err != nil {
		util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err, "agreedPrice"), nil)
		return
	}

	trackingSecret, err := util.GenerateTrackingSecret()
	if err != nil {
		pc.app.Logger.Errorf("Failed to generate tracking secret: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	generator := scribearc.NewReferenceCodeGenerator(pc.app.Repository.ReferenceSequence, scribearc.DefaultReferenceCodeAttempts)
	referenceCode, err := generator.Generate(ctx, time.Now())
	if err != nil {
		pc.app.Logger.Errorf("Failed to generate reference code: %v", err)
		util.ResponseFailed(ctx, httpStatusForError(err), "Could not allocate a reference code", util.GenerateErrorMessages(err), nil)
		return
	}

	project := model.Project{
		ReferenceCode:     referenceCode,
		TrackingSecret:    trackingSecret,
		Title:             body.Title,
		Requirements:      body.Requirements,
		Status:            string(scribearc.StatusSubmitted),
		AgreedPrice:       body.AgreedPrice,
		DiscountAmount:    body.DiscountAmount,
		AdditionalCharges: body.AdditionalCharges,
		WriterShare:       writerShare,
		AdminShare:        adminShare,
		Deadline:          body.Deadline,
		ClientID:          client.ID,
		PackageID:         pkg.ID,
	}

	submitted := scribearc.StatusSubmitted
	history := model.NewProjectHistory("", scribearc.HistoryEntry{
		Action:    scribearc.ActionProjectCreated,
		NewStatus: &submitted,
		Notes:     fmt.Sprintf("submitted with package %s", pkg.Name),
	})

	if err := pc.app.Repository.Project.Create(ctx, nil, &project, history); err != nil {
		pc.app.Logger.Errorf("Failed to create project: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	pc.notifyClient(client, &project, mailer.TemplateProjectReceived, "")

	util.ResponseSuccess(ctx, gin.H{
		"referenceCode": project.ReferenceCode,
		"trackingUrl":   pc.trackingURL(&project),
		"project":       project,
	})
}

// validateRequirements checks the intake payload against the package's
// requirement schema: every schema field must be present with the declared
// scalar type. Extra scalar fields are allowed.
func validateRequirements(requirements model.JSONMap, schema model.JSONMap) error {
	if err := requirements.ValidateScalarValues(); err != nil {
		return err
	}

	for field, typeName := range schema {
		value, ok := requirements[field]
		if !ok {
			return fmt.Errorf("requirement field %s is required", field)
		}

		switch typeName {
		case "string":
			if _, ok := value.(string); !ok {
				return fmt.Errorf("requirement field %s must be a string", field)
			}
		case "number":
			if _, ok := value.(float64); !ok {
				return fmt.Errorf("requirement field %s must be a number", field)
			}
		case "bool":
			if _, ok := value.(bool); !ok {
				return fmt.Errorf("requirement field %s must be a boolean", field)
			}
		}
	}

	return nil
}

func (pc ProjectController) GetProjectById(ctx *gin.Context) {
	project, err := pc.app.Repository.Project.GetById(ctx, nil, ctx.Param("projectId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to get project: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

func (pc ProjectController) ListProjects(ctx *gin.Context) {
	page, _ := strconv.ParseUint(ctx.DefaultQuery("page", "1"), 10, 32)
	pageSize, _ := strconv.ParseUint(ctx.DefaultQuery("pageSize", "20"), 10, 32)
	status := ctx.Query("status")

	if status != "" && !scribearc.Status(status).Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown status filter", nil, nil)
		return
	}

	projects, total, err := pc.app.Repository.Project.List(ctx, nil, status, uint(page), uint(pageSize))
	if err != nil {
		pc.app.Logger.Errorf("Failed to list projects: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects":  projects,
		"total":     total,
		"totalPage": util.CalculateTotalPage(total, uint(pageSize)),
	})
}

func (pc ProjectController) GetProjectHistory(ctx *gin.Context) {
	projectId := ctx.Param("projectId")

	if _, err := pc.app.Repository.Project.GetById(ctx, nil, projectId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to get project: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	histories, err := pc.app.Repository.ProjectHistory.GetByProjectId(ctx, nil, projectId)
	if err != nil {
		pc.app.Logger.Errorf("Failed to get project history: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"histories": histories,
	})
}

type transitionRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

type rejectRequest struct {
	Reason string `json:"reason" binding:"required,strNotEmpty,max=2000"`
}

// Staff transitions.

func (pc ProjectController) ValidateProject(ctx *gin.Context) {
	pc.applyTransition(ctx, scribearc.StatusValidated, scribearc.ActorStaff, "")
}

func (pc ProjectController) RejectProject(ctx *gin.Context) {
	var body rejectRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	pc.applyTransition(ctx, scribearc.StatusRejected, scribearc.ActorStaff, body.Reason)
}

func (pc ProjectController) RequestRevision(ctx *gin.Context) {
	pc.applyTransition(ctx, scribearc.StatusInProgress, scribearc.ActorStaff, "")
}

func (pc ProjectController) CompleteProject(ctx *gin.Context) {
	pc.applyTransition(ctx, scribearc.StatusComplete, scribearc.ActorStaff, "")
}

func (pc ProjectController) SettleProject(ctx *gin.Context) {
	pc.applyTransition(ctx, scribearc.StatusPaid, scribearc.ActorStaff, "")
}

func (pc ProjectController) CancelProject(ctx *gin.Context) {
	pc.applyTransition(ctx, scribearc.StatusCancelled, scribearc.ActorStaff, "")
}

// Writer transitions.

type startRequest struct {
	EstimatedCompletionAt *time.Time `json:"estimatedCompletionAt"`
}

func (pc ProjectController) StartProject(ctx *gin.Context) {
	var body startRequest
	// the estimate is optional; an empty body is fine
	_ = ctx.ShouldBindJSON(&body)

	pc.applyWriterTransition(ctx, scribearc.StatusInProgress, body.EstimatedCompletionAt)
}

func (pc ProjectController) SubmitForReview(ctx *gin.Context) {
	pc.applyWriterTransition(ctx, scribearc.StatusReview, nil)
}

// applyTransition runs a staff status change through the engine and commits
// conditionally on the status it read. Notifications are dispatched after the
// commit and never roll it back.
func (pc ProjectController) applyTransition(ctx *gin.Context, to scribearc.Status, actor scribearc.Actor, notes string) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	if notes == "" {
		var body transitionRequest
		// notes are optional; an empty body is fine
		_ = ctx.ShouldBindJSON(&body)
		notes = body.Notes
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, ctx.Param("projectId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to get project: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	pc.commitTransition(ctx, project, to, actor, &user.ID, notes, nil)
}

// applyWriterTransition is applyTransition plus the ownership check: writers
// may only move their own projects.
func (pc ProjectController) applyWriterTransition(ctx *gin.Context, to scribearc.Status, estimatedCompletionAt *time.Time) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, ctx.Param("projectId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to get project: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if project.WriterID == nil || *project.WriterID != user.ID {
		util.ResponseFailed(ctx, http.StatusForbidden, "Project is not assigned to you", nil, nil)
		return
	}

	pc.commitTransition(ctx, project, to, scribearc.ActorWriter, &user.ID, "", estimatedCompletionAt)
}

func (pc ProjectController) commitTransition(ctx *gin.Context, project *model.Project, to scribearc.Status, actor scribearc.Actor, performedBy *string, notes string, estimatedCompletionAt *time.Time) {
	fromStatus := project.Status

	engineProject := project.ToEngine()
	result, err := scribearc.ApplyTransition(engineProject, to, actor, performedBy, notes, time.Now())
	if err != nil {
		util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err, "status"), nil)
		return
	}

	if estimatedCompletionAt != nil {
		if err := scribearc.SetEstimatedCompletion(engineProject, *estimatedCompletionAt); err != nil {
			util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err, "estimatedCompletionAt"), nil)
			return
		}
	}

	project.ApplyEngine(engineProject)
	history := model.NewProjectHistory(project.ID, result.Entry)

	if err := pc.app.Repository.Project.CommitEngineResult(ctx, nil, project, fromStatus, history); err != nil {
		pc.app.Logger.Errorf("Failed to commit transition %s -> %s for project %s: %v", fromStatus, to, project.ID, err)
		util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err, "status"), nil)
		return
	}

	pc.dispatchIntents(project, result.Intents, notes)

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

type assignWriterRequest struct {
	WriterID string `json:"writerId" binding:"required"`
}

// AssignWriter assigns (or reassigns) a writer, enforcing the capacity cap.
func (pc ProjectController) AssignWriter(ctx *gin.Context) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	var body assignWriterRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, ctx.Param("projectId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to get project: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	writer, err := pc.app.Repository.User.GetById(ctx, nil, body.WriterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown writer", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to get writer: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if writer.Role != constant.UserRoleWriter || !writer.IsActive {
		util.ResponseFailed(ctx, http.StatusBadRequest, "User is not an active writer", nil, nil)
		return
	}

	activeCount, err := pc.app.Repository.Project.CountActiveByWriter(ctx, nil, writer.ID)
	if err != nil {
		pc.app.Logger.Errorf("Failed to count active projects for writer %s: %v", writer.ID, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	fromStatus := project.Status

	engineProject := project.ToEngine()
	result, err := scribearc.AssignWriter(engineProject, writer.ID, int(activeCount), writer.MaxActiveProjects, &user.ID, time.Now())
	if err != nil {
		util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err, "writerId"), nil)
		return
	}

	project.ApplyEngine(engineProject)
	project.Writer = writer
	history := model.NewProjectHistory(project.ID, result.Entry)

	if err := pc.app.Repository.Project.CommitEngineResult(ctx, nil, project, fromStatus, history); err != nil {
		pc.app.Logger.Errorf("Failed to commit writer assignment for project %s: %v", project.ID, err)
		util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err, "status"), nil)
		return
	}

	pc.dispatchIntents(project, result.Intents, "")

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

type adjustPriceRequest struct {
	DiscountAmount    int64 `json:"discountAmount" binding:"gte=0"`
	AdditionalCharges int64 `json:"additionalCharges" binding:"gte=0"`
}

// AdjustPrice updates the discount and additional charges and recomputes the
// revenue split. Allowed in any non-terminal status.
func (pc ProjectController) AdjustPrice(ctx *gin.Context) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	var body adjustPriceRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, ctx.Param("projectId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
			return
		}

		pc.app.Logger.Errorf("Failed to get project: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	fromStatus := project.Status

	engineProject := project.ToEngine()
	result, err := scribearc.AdjustPrice(engineProject, body.DiscountAmount, body.AdditionalCharges, &user.ID, time.Now())
	if err != nil {
		util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err, "discountAmount"), nil)
		return
	}

	project.ApplyEngine(engineProject)
	history := model.NewProjectHistory(project.ID, result.Entry)

	if err := pc.app.Repository.Project.CommitEngineResult(ctx, nil, project, fromStatus, history); err != nil {
		pc.app.Logger.Errorf("Failed to commit price adjustment for project %s: %v", project.ID, err)
		util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

// ListAtRisk returns active projects within the risk threshold of their
// deadline, most urgent first. Staff dashboard feed.
func (pc ProjectController) ListAtRisk(ctx *gin.Context) {
	projects, err := pc.app.Repository.Project.ListActive(ctx, nil)
	if err != nil {
		pc.app.Logger.Errorf("Failed to list active projects: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	byId := make(map[string]*model.Project, len(projects))
	engineProjects := make([]*scribearc.Project, 0, len(projects))
	for _, p := range projects {
		byId[p.ID] = p
		engineProjects = append(engineProjects, p.ToEngine())
	}

	atRisk := scribearc.FindAtRiskProjects(engineProjects, time.Now(), scribearc.DefaultAtRiskThreshold)

	out := make([]*model.Project, 0, len(atRisk))
	for _, ep := range atRisk {
		out = append(out, byId[ep.ID])
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects": out,
	})
}

// ListMyProjects returns the authenticated writer's projects.
func (pc ProjectController) ListMyProjects(ctx *gin.Context) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	projects, err := pc.app.Repository.Project.ListByWriter(ctx, nil, user.ID)
	if err != nil {
		pc.app.Logger.Errorf("Failed to list projects for writer %s: %v", user.ID, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects": projects,
	})
}

func (pc ProjectController) trackingURL(project *model.Project) string {
	return fmt.Sprintf("%s/track/%s", pc.app.Config.FrontendURL, project.TrackingSecret)
}

// dispatchIntents publishes the notifications a transition asked for.
// Best-effort: failures are logged and never affect the committed transition.
func (pc ProjectController) dispatchIntents(project *model.Project, intents []scribearc.Intent, notes string) {
	for _, intent := range intents {
		switch intent {
		case scribearc.IntentNotifyClient:
			pc.notifyClient(&project.Client, project, clientTemplateForStatus(scribearc.Status(project.Status)), notes)
		case scribearc.IntentNotifyWriter:
			pc.notifyWriter(project)
		}
	}
}

func clientTemplateForStatus(status scribearc.Status) mailer.MailTemplateFile {
	switch status {
	case scribearc.StatusValidated:
		return mailer.TemplateProjectValidated
	case scribearc.StatusRejected:
		return mailer.TemplateProjectRejected
	case scribearc.StatusAssigned:
		return mailer.TemplateProjectAssigned
	case scribearc.StatusComplete:
		return mailer.TemplateProjectCompleted
	}

	return mailer.TemplateProjectReceived
}

func (pc ProjectController) notifyClient(client *model.Client, project *model.Project, template mailer.MailTemplateFile, notes string) {
	if client == nil || client.Email == "" {
		return
	}

	payload, err := queue.NewNotificationJobPayload(client.Name, client.Email, template, mailer.ProjectStatusData{
		ClientName:    client.Name,
		ReferenceCode: project.ReferenceCode,
		Status:        project.Status,
		Notes:         notes,
		TrackingURL:   pc.trackingURL(project),
	})
	if err != nil {
		pc.app.Logger.Errorf("Failed to build client notification for project %s: %v", project.ID, err)
		return
	}

	if err := pc.app.Queue.PublishNotification(payload); err != nil {
		pc.app.Logger.Errorf("Failed to publish client notification for project %s: %v", project.ID, err)
	}
}

func (pc ProjectController) notifyWriter(project *model.Project) {
	if project.Writer == nil || project.Writer.Email == "" {
		return
	}

	writerName := project.Writer.FirstName + " " + project.Writer.LastName
	payload, err := queue.NewNotificationJobPayload(writerName, project.Writer.Email, mailer.TemplateWriterNewAssignment, mailer.WriterAssignmentData{
		WriterName:    writerName,
		ReferenceCode: project.ReferenceCode,
		Title:         project.Title,
		Deadline:      project.Deadline.Format(time.RFC1123),
	})
	if err != nil {
		pc.app.Logger.Errorf("Failed to build writer notification for project %s: %v", project.ID, err)
		return
	}

	if err := pc.app.Queue.PublishNotification(payload); err != nil {
		pc.app.Logger.Errorf("Failed to publish writer notification for project %s: %v", project.ID, err)
	}
}
