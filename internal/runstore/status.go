package runstore

import (
	"fmt"

	"github.com/mlcortez/footprint/schema"
)

// PrintLedgerStatus prints run ledger status information.
func PrintLedgerStatus(status schema.LedgerStatus) {
	fmt.Printf("Ledger Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		return
	}
	fmt.Printf("Location: %s\n", status.Location)
	fmt.Printf("Total Runs: %d\n", status.RunCount)
}
