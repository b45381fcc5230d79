package genai

import "context"

// StubClient returns canned responses for tests.
type StubClient struct {
	Response string
	Err      error
	Prompts  []string
}

func (s *StubClient) GenerateText(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}
