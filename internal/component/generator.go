// Package component synthesizes React component sources from a
// GenerationConfig. Generation is pure: identical configurations always
// produce byte-identical artifacts, and an invalid configuration produces
// none.
package component

import "fmt"

// Generate validates the configuration and synthesizes every requested
// artifact. The component artifact is always present; test, style and docs
// artifacts depend on the configuration.
func Generate(config GenerationConfig) (Artifacts, error) {
	if err := Validate(config); err != nil {
		return nil, err
	}

	p := newPlan(config)
	artifacts := Artifacts{
		ArtifactComponent: p.artifact(ArtifactComponent, synthesizeComponent(p)),
	}

	if config.GenerateTests {
		artifacts[ArtifactTest] = p.artifact(ArtifactTest, synthesizeTest(p))
	}

	style, ok, err := synthesizeStyle(p)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize style for %s: %w", p.name, err)
	}
	if ok {
		artifacts[ArtifactStyle] = p.artifact(ArtifactStyle, style)
	}

	if config.GenerateDocStories {
		story, err := synthesizeStory(p)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize story for %s: %w", p.name, err)
		}
		artifacts[ArtifactDocs] = p.artifact(ArtifactDocs, story)
	}

	return artifacts, nil
}

func (p plan) artifact(kind ArtifactKind, content string) Artifact {
	return Artifact{Kind: kind, Filename: p.filename(kind), Content: content}
}
