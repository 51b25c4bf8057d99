package workflow

// DefaultMinLength — минимальная длина нового секрета.
const DefaultMinLength = 6

// Сообщения отчёта о валидности.
const (
	MsgMismatch      = "mismatch"
	MsgTooShort      = "too short"
	MsgSameAsCurrent = "must differ from current"
	MsgConfirmed     = "confirmed"
)

// Report — результат проверки полей нового значения.
//
// Нейтральный отчёт (поле подтверждения ещё пустое): Valid=false, Message="".
type Report struct {
	Valid   bool
	Message string
}

// Neutral сообщает, что проверять пока нечего.
func (r Report) Neutral() bool {
	return !r.Valid && r.Message == ""
}

// Rules — параметры проверки. Нулевой MinLength означает DefaultMinLength.
type Rules struct {
	MinLength int
}

// Validate проверяет новое значение с правилами по умолчанию.
func Validate(newSecret, confirmSecret, currentSecret string) Report {
	return Rules{}.Validate(newSecret, confirmSecret, currentSecret)
}

// Validate применяет правила по порядку, первое нарушенное побеждает:
//  1. пустое подтверждение — нейтральный отчёт;
//  2. новое != подтверждение — MsgMismatch;
//  3. длина меньше минимальной — MsgTooShort;
//  4. новое совпадает с подтверждённым текущим — MsgSameAsCurrent;
//  5. иначе валидно, MsgConfirmed.
//
// Функция чистая: её можно вызывать на каждое изменение поля.
// Длина считается в символах, а не в байтах.
func (r Rules) Validate(newSecret, confirmSecret, currentSecret string) Report {
	minLen := r.MinLength
	if minLen <= 0 {
		minLen = DefaultMinLength
	}

	if confirmSecret == "" {
		return Report{}
	}
	if newSecret != confirmSecret {
		return Report{Message: MsgMismatch}
	}
	if len([]rune(newSecret)) < minLen {
		return Report{Message: MsgTooShort}
	}
	if newSecret == currentSecret {
		return Report{Message: MsgSameAsCurrent}
	}
	return Report{Valid: true, Message: MsgConfirmed}
}
