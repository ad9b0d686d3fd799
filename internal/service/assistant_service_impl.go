package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/db"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/llm"
	"github.com/alexanderramin/ganttly/internal/planning"
	"github.com/alexanderramin/ganttly/internal/wbs"
	"github.com/google/uuid"
)

// ErrEmptyPrompt is returned for a blank description or command.
var ErrEmptyPrompt = errors.New("prompt is empty")

type assistantService struct {
	store
	client   llm.Client
	observer UseCaseObserver
}

func NewAssistantService(uow db.UnitOfWork, client llm.Client, observers ...UseCaseObserver) AssistantService {
	if client == nil {
		client = llm.DisabledClient{}
	}
	return &assistantService{
		store:    newStore(uow),
		client:   client,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *assistantService) Generate(ctx context.Context, description string) (p *domain.Project, err error) {
	sp := startSpan(s.observer, "generate-project", "")
	defer func() { sp.done(ctx, err) }()

	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyPrompt
	}
	g, err := s.ask(ctx, llm.TaskGenerate, planning.GenerateSystemPrompt(),
		planning.GeneratePrompt(description, domain.DateOf(s.now().UTC())))
	if err != nil {
		return nil, err
	}

	project := planning.NewProject(g, strings.TrimSpace(description), s.now())
	project.ID = uuid.New().String()
	sp.projectID = project.ID
	sp.set("tasks", wbs.Count(project.WBS))

	if err = s.create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *assistantService) Command(ctx context.Context, projectRef, text string) (res *CommandResult, err error) {
	sp := startSpan(s.observer, "assistant-command", projectRef)
	defer func() { sp.done(ctx, err) }()

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPrompt
	}

	if q, ok := planning.LookupQuick(text); ok {
		sp.set("quick", q.Phrase)
		p, err := s.mutate(ctx, projectRef, func(p domain.Project, now time.Time) (domain.Project, error) {
			return planning.ApplyQuick(p, q, text, now), nil
		})
		if err != nil {
			return nil, err
		}
		return newCommandResult(p, true), nil
	}

	current, err := s.load(ctx, projectRef)
	if err != nil {
		return nil, err
	}
	prompt, err := planning.EditPrompt(*current, text)
	if err != nil {
		return nil, err
	}
	g, err := s.ask(ctx, llm.TaskEdit, planning.EditSystemPrompt(), prompt)
	if err != nil {
		return nil, err
	}

	// The reply is applied to a fresh read so edits made while the model was
	// working are not lost from the conversation log.
	p, err := s.mutate(ctx, current.ID, func(p domain.Project, now time.Time) (domain.Project, error) {
		return planning.ApplyEdit(p, g, text, now), nil
	})
	if err != nil {
		return nil, err
	}
	sp.set("tasks", wbs.Count(p.WBS))
	return newCommandResult(p, false), nil
}

// ask calls the generator and returns its reply as a validated project.
func (s *assistantService) ask(ctx context.Context, task llm.TaskType, system, user string) (*planning.GeneratedProject, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return nil, fmt.Errorf("calling generator: %w", err)
	}
	g, err := planning.ParseGenerated(resp.Text)
	if err != nil {
		return nil, err
	}
	if err := wbs.Validate(g.WBS); err != nil {
		return nil, fmt.Errorf("%w: %w", planning.ErrInvalidPayload, err)
	}
	return g, nil
}

func newCommandResult(p *domain.Project, quick bool) *CommandResult {
	res := &CommandResult{Project: p, Quick: quick}
	if n := len(p.ConversationHistory); n > 0 {
		res.Entry = p.ConversationHistory[n-1]
	}
	return res
}
