package workflow

// State — состояние процесса подтверждения.
type State string

const (
	StateAwaitingCurrentSecret State = "AwaitingCurrentSecret"
	StateCurrentSecretVerified State = "CurrentSecretVerified"
	StateNewSecretEntryValid   State = "NewSecretEntryValid"
	StateSubmissionInFlight    State = "SubmissionInFlight"
	StateCompleted             State = "Completed"
	StateFailed                State = "Failed"
)

func (s State) String() string {
	return string(s)
}

// Trigger — событие, переводящее процесс между состояниями.
type Trigger string

const (
	triggerVerified     Trigger = "verified"
	triggerEditCurrent  Trigger = "edit_current"
	triggerEntryValid   Trigger = "entry_valid"
	triggerEntryInvalid Trigger = "entry_invalid"
	triggerSubmit       Trigger = "submit"
	triggerSubmitOK     Trigger = "submit_ok"
	triggerSubmitFailed Trigger = "submit_failed"
	triggerRecover      Trigger = "recover"
)

// MessageKind — тип сообщения для пользователя; от него зависит, как его показать.
type MessageKind int

const (
	KindNone MessageKind = iota
	KindInfo
	KindSuccess
	KindValidation // рядом с полем, не модально
	KindRejection  // сервер отказал, можно повторить
	KindTransport  // сервер недоступен
	KindIntegrity  // нет идентичности, нужно войти заново
)

func (k MessageKind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSuccess:
		return "success"
	case KindValidation:
		return "validation"
	case KindRejection:
		return "rejection"
	case KindTransport:
		return "transport"
	case KindIntegrity:
		return "integrity"
	default:
		return "none"
	}
}

// Message — последнее сообщение, показанное пользователю.
type Message struct {
	Kind MessageKind
	Text string
}

// Тексты сообщений контроллера.
const (
	TextEnterCurrent    = "enter the current value first"
	TextCurrentVerified = "current value confirmed"
	TextUnreachable     = "service unreachable, check your network connection and try again later"
)

// Snapshot — согласованный снимок состояния контроллера для отрисовки экрана.
type Snapshot struct {
	Profile          string
	State            State
	Verification     *VerificationResult
	Report           Report
	Message          Message
	CanCheck         bool
	NewFieldsEnabled bool
	CanSubmit        bool
}
