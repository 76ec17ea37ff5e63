package resume

import "context"

// Analyzer evaluates a resume and returns structured findings. The payload is
// opaque to the rest of the system; it is stored wholesale on the user record.
type Analyzer interface {
	Analyze(ctx context.Context, filename string, data []byte) (map[string]interface{}, error)
}

// CannedAnalyzer returns a fixed set of findings. Stands in for an external
// analysis provider until one is integrated.
type CannedAnalyzer struct{}

func NewCannedAnalyzer() *CannedAnalyzer {
	return &CannedAnalyzer{}
}

func (a *CannedAnalyzer) Analyze(_ context.Context, _ string, _ []byte) (map[string]interface{}, error) {
	return map[string]interface{}{
		"skills":          []string{"JavaScript", "React", "Node.js"},
		"projects":        []string{"E-commerce Website", "Portfolio Site"},
		"weakPoints":      []string{"Lack of experience in backend databases"},
		"suggestions":     []string{"Add more technical projects", "Improve resume formatting"},
		"roleSuggestions": []string{"Frontend Developer", "Full Stack Developer"},
		"companyMatches":  []string{"Google", "Microsoft", "Amazon"},
	}, nil
}
