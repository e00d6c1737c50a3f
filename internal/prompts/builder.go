package prompts

import (
	"fmt"

	"github.com/d-p-harms/photoranker/internal/criteria"
)

// analysisFile is the embedded prompt file holding one instruction block per
// criterion. Each block establishes the reviewer persona, lists the
// dimensions to assess, and dictates the exact JSON shape the oracle must
// emit.
const analysisFile = "analysis.json"

// Build returns the full oracle instruction block for a criterion. The
// criterion is normalized first, so unknown values receive the comprehensive
// "best" prompt rather than an error. The prompt depends only on the
// criterion and is built once per batch.
func Build(c criteria.Criterion) string {
	key := string(criteria.Normalize(string(c)))
	prompt, err := Get(analysisFile, key)
	if err != nil {
		// Every normalized criterion has a template; a miss here means the
		// embedded file is out of sync with the criteria package.
		return MustGet(analysisFile, string(criteria.Best))
	}
	return prompt
}

// Verify checks that the embedded prompt file carries a template for every
// supported criterion. Called at startup so a missing template fails fast
// instead of silently serving the fallback prompt per batch.
func Verify() error {
	keys, err := List(analysisFile)
	if err != nil {
		return err
	}

	have := make(map[string]bool, len(keys))
	for _, k := range keys {
		have[k] = true
	}
	for _, name := range criteria.Supported() {
		if !have[name] {
			return fmt.Errorf("no prompt template for criterion %q in %s", name, analysisFile)
		}
	}
	return nil
}
