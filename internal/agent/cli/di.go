package cli

import (
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/api"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/config"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/fridge"
)

// для тестов
var (
	NewAPIClient    = api.NewClient
	NewSecretReader = func(cmd *cobra.Command, fromStdin bool) SecretReader {
		return newSecretReader(cmd, fromStdin)
	}
	SaveFridgeToFile = fridge.SaveToFile
	SaveCredentials  = config.Save
)
