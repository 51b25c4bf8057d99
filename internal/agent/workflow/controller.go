// Package workflow реализует процесс изменения данных аккаунта с подтверждением
// текущего секрета на сервере.
//
// Порядок шагов: ввод текущего секрета -> проверка на сервере -> ввод нового
// значения и его локальная валидация -> отправка -> сообщение экрану, на который
// пользователь возвращается. Состояния и переходы описаны конечным автоматом
// (qmuntal/stateless), данные процесса принадлежат только Controller.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/qmuntal/stateless"
	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// FlagSetter принимает одноразовое сообщение для экрана возврата.
type FlagSetter interface {
	Set(message string)
}

// Controller ведёт один экземпляр процесса подтверждения.
//
// Методы безопасны для вызова из разных горутин. Сетевые вызовы выполняются
// без удержания блокировки; пока запрос по действию не завершился, повторное
// действие возвращает serr.ErrBusy и новый запрос не отправляется.
type Controller struct {
	mu sync.Mutex
	sm *stateless.StateMachine

	profile  Profile
	rules    Rules
	gw       Gateway
	identity string
	log      *zap.Logger
	notifier FlagSetter

	current   string
	next      string
	confirm   string
	confirmed string // секрет, прошедший проверку на сервере

	verification *VerificationResult
	report       Report
	message      Message

	checking bool
	gen      uint64 // растёт при каждом изменении текущего секрета
	closed   bool
}

// Option настраивает Controller.
type Option func(*Controller)

// WithLogger задаёт логгер переходов.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithNotifier задаёт получателя флага перехода после успешной отправки.
func WithNotifier(n FlagSetter) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// NewController создаёт процесс для профиля p.
//
// Идентичность читается один раз при старте. Если её нет, возвращается
// serr.ErrIdentityMissing и ни один запрос не выполняется.
func NewController(src IdentitySource, gw Gateway, p Profile, opts ...Option) (*Controller, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	identity, err := src.Identity()
	if err == nil && strings.TrimSpace(identity) == "" {
		err = serr.ErrIdentityMissing
	}
	if err != nil {
		if !errors.Is(err, serr.ErrIdentityMissing) {
			err = fmt.Errorf("%w: %v", serr.ErrIdentityMissing, err)
		}
		return nil, err
	}

	c := &Controller{
		profile:  p,
		rules:    p.Rules(),
		gw:       gw,
		identity: identity,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.sm = c.newStateMachine()
	return c, nil
}

func (c *Controller) newStateMachine() *stateless.StateMachine {
	sm := stateless.NewStateMachine(StateAwaitingCurrentSecret)

	sm.Configure(StateAwaitingCurrentSecret).
		Permit(triggerVerified, StateCurrentSecretVerified).
		Ignore(triggerEditCurrent)

	sm.Configure(StateCurrentSecretVerified).
		Permit(triggerEditCurrent, StateAwaitingCurrentSecret).
		Permit(triggerEntryValid, StateNewSecretEntryValid).
		Ignore(triggerEntryInvalid)

	sm.Configure(StateNewSecretEntryValid).
		Permit(triggerEditCurrent, StateAwaitingCurrentSecret).
		Permit(triggerEntryInvalid, StateCurrentSecretVerified).
		Permit(triggerSubmit, StateSubmissionInFlight).
		Ignore(triggerEntryValid)

	sm.Configure(StateSubmissionInFlight).
		Permit(triggerSubmitOK, StateCompleted).
		Permit(triggerSubmitFailed, StateFailed)

	// отказ при отправке не конечен: сразу возвращаемся к готовому вводу
	sm.Configure(StateFailed).
		Permit(triggerRecover, StateNewSecretEntryValid)

	sm.Configure(StateCompleted)

	sm.OnTransitioned(func(_ context.Context, t stateless.Transition) {
		c.log.Debug("workflow transition",
			zap.String("profile", c.profile.Name),
			zap.Any("source", t.Source),
			zap.Any("destination", t.Destination),
			zap.Any("trigger", t.Trigger),
		)
	})
	return sm
}

// fire вызывается под c.mu.
func (c *Controller) fire(t Trigger) error {
	if err := c.sm.Fire(t); err != nil {
		return fmt.Errorf("%w: %v", serr.ErrInvalidState, err)
	}
	return nil
}

func (c *Controller) state() State {
	return c.sm.MustState().(State)
}

// State возвращает текущее состояние.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

// Profile возвращает профиль процесса.
func (c *Controller) Profile() Profile {
	return c.profile
}

// SetCurrent обновляет поле текущего секрета.
//
// Любое изменение поля после проверки сбрасывает процесс в
// AwaitingCurrentSecret: подтверждение старого значения больше не доверяется,
// поля нового значения очищаются. Результат проверки, которая ещё идёт,
// будет отброшен.
func (c *Controller) SetCurrent(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(); err != nil {
		return err
	}
	if s == c.current {
		return nil
	}

	c.current = s
	c.gen++
	c.verification = nil
	c.message = Message{}

	if c.state() == StateAwaitingCurrentSecret {
		return nil
	}
	c.confirmed = ""
	c.next = ""
	c.confirm = ""
	c.report = Report{}
	return c.fire(triggerEditCurrent)
}

// SetNew обновляет поле нового значения и пересчитывает отчёт.
func (c *Controller) SetNew(s string) error {
	return c.editEntry(func() { c.next = s })
}

// SetConfirm обновляет поле подтверждения и пересчитывает отчёт.
func (c *Controller) SetConfirm(s string) error {
	return c.editEntry(func() { c.confirm = s })
}

func (c *Controller) editEntry(apply func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editableLocked(); err != nil {
		return err
	}
	if c.state() == StateAwaitingCurrentSecret {
		return serr.ErrFieldLocked
	}

	apply()
	c.report = c.rules.Validate(c.next, c.confirm, c.confirmed)
	if c.report.Valid {
		return c.fire(triggerEntryValid)
	}
	return c.fire(triggerEntryInvalid)
}

func (c *Controller) editableLocked() error {
	if c.closed {
		return serr.ErrDisposed
	}
	switch c.state() {
	case StateSubmissionInFlight:
		return serr.ErrBusy
	case StateCompleted:
		return serr.ErrInvalidState
	}
	return nil
}

// Check проверяет текущий секрет на сервере.
//
// Отказ сервера не является ошибкой: он возвращается как Verified=false с
// причиной и остаётся в AwaitingCurrentSecret. Ошибка возвращается, если
// сервер недоступен (serr.ErrUnreachable), действие недоступно или результат
// устарел/отброшен.
func (c *Controller) Check(ctx context.Context) (VerificationResult, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return VerificationResult{}, serr.ErrDisposed
	}
	if c.checking {
		c.mu.Unlock()
		return VerificationResult{}, serr.ErrBusy
	}
	if c.state() != StateAwaitingCurrentSecret {
		c.mu.Unlock()
		return VerificationResult{}, serr.ErrInvalidState
	}
	if c.current == "" {
		c.message = Message{Kind: KindValidation, Text: TextEnterCurrent}
		c.mu.Unlock()
		return VerificationResult{}, serr.ErrInvalidInput
	}
	c.checking = true
	gen := c.gen
	secret := c.current
	c.mu.Unlock()

	res, err := c.gw.VerifyCurrent(ctx, c.identity, secret)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.checking = false

	if c.closed {
		return VerificationResult{}, serr.ErrDisposed
	}
	if gen != c.gen {
		c.log.Debug("stale verification discarded", zap.String("profile", c.profile.Name))
		return VerificationResult{}, serr.ErrStaleResult
	}
	if err != nil {
		c.message = Message{Kind: KindTransport, Text: TextUnreachable}
		c.log.Warn("verification failed: no response", zap.String("profile", c.profile.Name), zap.Error(err))
		return VerificationResult{}, err
	}
	if !res.Verified {
		if res.Reason == "" {
			res.Reason = FallbackVerifyReason
		}
		c.verification = &res
		c.message = Message{Kind: KindRejection, Text: res.Reason}
		c.log.Info("verification rejected", zap.String("profile", c.profile.Name), zap.String("reason", res.Reason))
		return res, nil
	}

	res.Reason = ""
	c.verification = &res
	c.confirmed = secret
	c.report = Report{}
	c.message = Message{Kind: KindSuccess, Text: TextCurrentVerified}
	if err := c.fire(triggerVerified); err != nil {
		return VerificationResult{}, err
	}
	return res, nil
}

// Submit отправляет новое значение.
//
// Доступно только из NewSecretEntryValid. Пока запрос в полёте, повторный
// вызов возвращает serr.ErrBusy без нового запроса. При отказе или
// недоступности сервера процесс возвращается в NewSecretEntryValid.
// При успехе процесс завершается, введённые значения стираются, а флаг
// перехода получает сообщение профиля.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return serr.ErrDisposed
	}
	switch c.state() {
	case StateSubmissionInFlight:
		c.mu.Unlock()
		return serr.ErrBusy
	case StateNewSecretEntryValid:
	default:
		c.mu.Unlock()
		return serr.ErrInvalidState
	}
	if err := c.fire(triggerSubmit); err != nil {
		c.mu.Unlock()
		return err
	}
	value := c.next
	c.message = Message{}
	c.mu.Unlock()

	res, err := c.gw.SubmitChange(ctx, c.identity, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return serr.ErrDisposed
	}
	if err != nil {
		c.message = Message{Kind: KindTransport, Text: TextUnreachable}
		c.log.Warn("submit failed: no response", zap.String("profile", c.profile.Name), zap.Error(err))
		return errors.Join(err, c.recoverLocked())
	}
	if !res.OK {
		reason := res.Error
		if reason == "" {
			reason = FallbackSubmitReason
		}
		c.message = Message{Kind: KindRejection, Text: reason}
		c.log.Info("submit rejected", zap.String("profile", c.profile.Name), zap.String("reason", reason))
		return errors.Join(fmt.Errorf("%w: %s", serr.ErrRejected, reason), c.recoverLocked())
	}

	if err := c.fire(triggerSubmitOK); err != nil {
		return err
	}
	c.wipeLocked()
	c.message = Message{Kind: KindSuccess, Text: c.profile.SuccessMessage}
	c.log.Info("workflow completed", zap.String("profile", c.profile.Name))
	if c.notifier != nil {
		c.notifier.Set(c.profile.SuccessMessage)
	}
	return nil
}

func (c *Controller) recoverLocked() error {
	if err := c.fire(triggerSubmitFailed); err != nil {
		return err
	}
	return c.fire(triggerRecover)
}

func (c *Controller) wipeLocked() {
	c.current = ""
	c.next = ""
	c.confirm = ""
	c.confirmed = ""
}

// Close освобождает процесс (экран закрыт).
//
// Ответы на уже отправленные запросы будут отброшены, введённые значения стираются.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.wipeLocked()
}

// Snapshot возвращает согласованный снимок для отрисовки.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state()
	snap := Snapshot{
		Profile: c.profile.Name,
		State:   st,
		Report:  c.report,
		Message: c.message,
	}
	if c.verification != nil {
		v := *c.verification
		snap.Verification = &v
	}
	if c.closed {
		return snap
	}
	snap.CanCheck = st == StateAwaitingCurrentSecret && !c.checking && c.current != ""
	snap.NewFieldsEnabled = st == StateCurrentSecretVerified || st == StateNewSecretEntryValid
	snap.CanSubmit = st == StateNewSecretEntryValid
	return snap
}
