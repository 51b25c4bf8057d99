// Package main содержит точку входа клиента ByteBite.
//
// Пакет запускает CLI и передаёт ему версию и дату сборки:
//
//	go build -ldflags "-X main.buildVersion=1.0.0 -X main.buildDate=2026-10-18" ./cmd/bytebite
package main

import "github.com/IvanChernomyrdin/bytebite/internal/agent/cli"

var (
	// buildVersion содержит версию приложения, передаваемую при сборке.
	buildVersion = "dev"
	// buildDate содержит дату сборки приложения.
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
