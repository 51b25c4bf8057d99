package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// SecretReader читает одно значение (пароль, новое имя) для поля с подписью label.
type SecretReader func(label string) (string, error)

// newSecretReader создаёт чтение секретов для команды.
//
// Режимы:
//   - fromStdin=true: каждое значение — очередная строка STDIN (удобно для скриптов/CI);
//   - fromStdin=false: скрытый ввод из терминала.
//
// Важно:
//   - если fromStdin=false, но stdin не является терминалом, вернётся ошибка
//     "stdin is not a terminal; use --stdin".
//   - пустая строка не ошибка: её отвергнет процесс подтверждения.
func newSecretReader(cmd *cobra.Command, fromStdin bool) SecretReader {
	if fromStdin {
		r := bufio.NewReader(cmd.InOrStdin())
		return func(label string) (string, error) {
			line, err := r.ReadString('\n')
			if err != nil && (!errors.Is(err, io.EOF) || line == "") {
				return "", fmt.Errorf("read %s from stdin: %w", strings.ToLower(label), err)
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
	}

	return func(label string) (string, error) {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", errors.New("stdin is not a terminal; use --stdin")
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", label)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}
}

// readPassword читает непустой пароль для входа/регистрации.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	pw, err := NewSecretReader(cmd, fromStdin)("Password")
	if err != nil {
		return "", err
	}
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
