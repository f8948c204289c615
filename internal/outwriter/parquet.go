package outwriter

import (
	"fmt"
	"os"

	"github.com/mlcortez/footprint/schema"
	"github.com/parquet-go/parquet-go"
)

// WriteParquet exports the flattened commit sequence to a Parquet file for
// downstream analytical tooling. The schema is inferred from the FlatCommit
// struct tags.
func WriteParquet(dataset *schema.Dataset, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[schema.FlatCommit](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(dataset.DetailedCommits); err != nil {
		return fmt.Errorf("failed to write commits to parquet file: %w", err)
	}
	return nil
}
