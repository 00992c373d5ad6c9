// Package review runs the detail/review modal: one wizard per admin, opened over a
// freshly fetched record, whose confirmed decision is executed through the record
// services.
package review

import (
	"context"
	"log/slog"
	"time"

	applicantmodels "soloparent/internal/applicants/models"
	soloparentmodels "soloparent/internal/soloparents/models"
	"soloparent/internal/wizard"
	"soloparent/pkg/domain"
	dErrors "soloparent/pkg/domain-errors"
	pkgsync "soloparent/pkg/platform/sync"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

type ApplicantService interface {
	Get(ctx context.Context, sess domain.Session, code domain.CodeID) (*applicantmodels.Applicant, error)
	Approve(ctx context.Context, sess domain.Session, code domain.CodeID) (*applicantmodels.Applicant, error)
	Decline(ctx context.Context, sess domain.Session, code domain.CodeID, remarks string) (*applicantmodels.Applicant, error)
}

type SoloParentService interface {
	Get(ctx context.Context, sess domain.Session, code domain.CodeID) (*soloparentmodels.SoloParent, error)
	Revoke(ctx context.Context, sess domain.Session, code domain.CodeID, remarks string) (*soloparentmodels.SoloParent, error)
}

type Metrics interface {
	IncrementReviewDecision(action string)
}

type Service struct {
	store       *Store
	locks       *pkgsync.ShardedMutex
	applicants  ApplicantService
	soloParents SoloParentService
	metrics     Metrics
	logger      *slog.Logger
	now         func() time.Time
}

type Option func(*Service)

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(store *Store, applicants ApplicantService, soloParents SoloParentService, opts ...Option) *Service {
	s := &Service{
		store:       store,
		locks:       pkgsync.NewShardedMutex(),
		applicants:  applicants,
		soloParents: soloParents,
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open fetches the record and starts a review at step 1, replacing whatever the admin
// had open before.
func (s *Service) Open(ctx context.Context, sess domain.Session, kind Kind, code domain.CodeID) (View, error) {
	var record any
	switch kind {
	case KindApplicant:
		a, err := s.applicants.Get(ctx, sess, code)
		if err != nil {
			return View{}, err
		}
		record = a
	case KindSoloParent:
		p, err := s.soloParents.Get(ctx, sess, code)
		if err != nil {
			return View{}, err
		}
		record = p
	default:
		return View{}, dErrors.NewField("kind", "kind must be one of [applicant solo_parent]")
	}

	var view View
	s.locks.Do(sess.AdminID.String(), func() {
		r := &Review{
			Kind:     kind,
			Code:     code,
			Record:   record,
			Wizard:   wizard.New(kind.flow()),
			Swipe:    wizard.NewSwipeTracker(),
			OpenedAt: s.now(),
		}
		s.store.Put(sess.AdminID, r)
		view = r.View()
	})
	return view, nil
}

func (s *Service) Current(sess domain.Session) (View, error) {
	return s.mutate(sess, func(*Review) error { return nil })
}

// Close dismisses the admin's review. Closing when nothing is open is not an error.
func (s *Service) Close(sess domain.Session) {
	s.locks.Do(sess.AdminID.String(), func() {
		s.store.Delete(sess.AdminID)
	})
}

func (s *Service) Next(sess domain.Session) (View, error) {
	return s.mutate(sess, func(r *Review) error {
		r.Wizard.Next()
		return nil
	})
}

func (s *Service) Previous(sess domain.Session) (View, error) {
	return s.mutate(sess, func(r *Review) error {
		r.Wizard.Previous()
		return nil
	})
}

func (s *Service) JumpTo(sess domain.Session, step int) (View, error) {
	return s.mutate(sess, func(r *Review) error {
		return r.Wizard.JumpTo(step)
	})
}

// Gesture feeds one touch event through the review's swipe tracker.
func (s *Service) Gesture(sess domain.Session, req GestureRequest) (View, error) {
	return s.mutate(sess, func(r *Review) error {
		p := wizard.Point{X: req.X, Y: req.Y}
		switch req.Phase {
		case PhaseBegin:
			r.Swipe.Begin(p)
		case PhaseMove:
			r.Wizard.Apply(r.Swipe.Move(p))
		case PhaseEnd:
			r.Swipe.End()
		default:
			return dErrors.NewField("phase", "phase must be one of [begin move end]")
		}
		return nil
	})
}

// Confirm opens the confirmation sub-state for action with the given remarks.
func (s *Service) Confirm(sess domain.Session, action wizard.Action, remarks string) (View, error) {
	return s.mutate(sess, func(r *Review) error {
		if err := r.Wizard.RequestConfirm(action); err != nil {
			return err
		}
		return r.Wizard.SetRemarks(remarks)
	})
}

func (s *Service) CancelConfirm(sess domain.Session) (View, error) {
	return s.mutate(sess, func(r *Review) error {
		r.Wizard.CancelConfirm()
		return nil
	})
}

// Submit executes the confirmed decision. On success the review is closed; on failure it
// stays open in the confirmation sub-state so the admin can retry.
func (s *Service) Submit(ctx context.Context, sess domain.Session, remarks *string) (*Outcome, error) {
	key := sess.AdminID.String()
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	r, ok := s.store.Get(sess.AdminID)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "no review is open")
	}
	if remarks != nil {
		if err := r.Wizard.SetRemarks(*remarks); err != nil {
			return nil, err
		}
	}
	decision, err := r.Wizard.Decision()
	if err != nil {
		return nil, err
	}

	record, err := s.execute(ctx, sess, r, decision)
	if err != nil {
		r.LastError = err.Error()
		s.logger.WarnContext(ctx, "review decision failed",
			"error", err, "admin_id", sess.AdminID, "code_id", r.Code, "action", decision.Action)
		return nil, err
	}

	s.store.Delete(sess.AdminID)
	if s.metrics != nil {
		s.metrics.IncrementReviewDecision(string(decision.Action))
	}
	return &Outcome{Kind: r.Kind, Code: r.Code.String(), Decision: decision, Record: record}, nil
}

func (s *Service) execute(ctx context.Context, sess domain.Session, r *Review, d wizard.Decision) (any, error) {
	r.LastError = ""
	switch d.Action {
	case wizard.ActionAccept:
		return s.applicants.Approve(ctx, sess, r.Code)
	case wizard.ActionDecline:
		return s.applicants.Decline(ctx, sess, r.Code, d.Remarks)
	case wizard.ActionRevoke:
		return s.soloParents.Revoke(ctx, sess, r.Code, d.Remarks)
	}
	return nil, dErrors.NewField("action", "unsupported action "+string(d.Action))
}

func (s *Service) mutate(sess domain.Session, fn func(*Review) error) (View, error) {
	var (
		view View
		err  error
	)
	s.locks.Do(sess.AdminID.String(), func() {
		r, ok := s.store.Get(sess.AdminID)
		if !ok {
			err = dErrors.New(dErrors.CodeNotFound, "no review is open")
			return
		}
		if err = fn(r); err != nil {
			return
		}
		view = r.View()
	})
	return view, err
}
