package synth

import (
	"fmt"
	"strings"
)

// requirementCategory selects the description template and extra tags
// for a Task, derived from the triggering requirement/step text.
type requirementCategory int

const (
	categoryGeneric requirementCategory = iota
	categoryDatabase
	categoryAI
	categoryFrontend
	categoryAPI
)

// categorize classifies requirement text by case-insensitive substring
// match. First match wins: database, then llm/ai, then website/frontend,
// then api. Everything else is generic.
func categorize(text string) requirementCategory {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "database"):
		return categoryDatabase
	case strings.Contains(lower, "llm") || strings.Contains(lower, "ai"):
		return categoryAI
	case strings.Contains(lower, "website") || strings.Contains(lower, "frontend"):
		return categoryFrontend
	case strings.Contains(lower, "api"):
		return categoryAPI
	default:
		return categoryGeneric
	}
}

// categoryTags returns the extra Task tags for a category. Generic
// requirements get no extra tags.
func categoryTags(cat requirementCategory) []string {
	switch cat {
	case categoryDatabase:
		return []string{"database", "backend", "data"}
	case categoryAI:
		return []string{"ai", "llm", "integration"}
	case categoryFrontend:
		return []string{"frontend", "ui", "web"}
	case categoryAPI:
		return []string{"api", "backend", "integration"}
	default:
		return nil
	}
}

// epicDescription renders the generic epic overview block.
func epicDescription(feature string) string {
	return strings.TrimSpace(fmt.Sprintf(`
## Epic Overview
%s

## Business Value
This epic delivers core functionality that aligns with our organization's focus on innovative technology solutions and digital transformation.

## Acceptance Criteria
- [ ] All related features are implemented and tested
- [ ] Solution meets performance and security requirements
- [ ] Documentation is complete and up-to-date
- [ ] User acceptance testing is completed successfully

## Dependencies
- Project infrastructure setup
- Development environment configuration
- Required third-party integrations`, feature))
}

// taskDescription renders the four-section task description for a
// requirement: Task Description (verbatim input), Technical Requirements
// and Acceptance Criteria (category-specific), and Definition of Done
// (the database and AI variants add a security review line).
func taskDescription(requirement string, cat requirementCategory) string {
	var body string
	switch cat {
	case categoryDatabase:
		body = `## Technical Requirements
- Choose appropriate database technology (SQL Server, PostgreSQL, MongoDB, etc.)
- Design database schema and relationships
- Implement connection pooling and configuration
- Set up database migrations and versioning
- Configure backup and recovery procedures

## Acceptance Criteria
- [ ] Database is provisioned and accessible
- [ ] Schema is implemented with proper relationships
- [ ] Connection strings are configured securely
- [ ] Basic CRUD operations are tested
- [ ] Performance benchmarks are established

## Definition of Done
- Code is reviewed and merged
- Unit tests are written and passing
- Documentation is updated
- Security review is completed`
	case categoryAI:
		body = `## Technical Requirements
- Select appropriate LLM provider (OpenAI, Azure OpenAI, Anthropic, etc.)
- Implement API integration and authentication
- Design prompt templates and conversation flow
- Set up rate limiting and error handling
- Implement response parsing and validation

## Acceptance Criteria
- [ ] LLM integration is functional and tested
- [ ] API keys are securely managed
- [ ] Conversation flow is implemented
- [ ] Error handling covers edge cases
- [ ] Response times meet performance requirements

## Definition of Done
- Integration tests are passing
- API documentation is complete
- Security scan shows no vulnerabilities
- Performance metrics are within acceptable range`
	case categoryFrontend:
		body = `## Technical Requirements
- Choose frontend framework (React, Angular, Vue.js, etc.)
- Design responsive UI components
- Implement routing and navigation
- Set up state management
- Configure build and deployment pipeline

## Acceptance Criteria
- [ ] Website is responsive across devices
- [ ] All core pages are implemented
- [ ] Navigation is intuitive and functional
- [ ] Performance scores meet standards
- [ ] Accessibility guidelines are followed

## Definition of Done
- UI/UX review is approved
- Cross-browser testing is completed
- Performance audit passes
- Accessibility audit passes`
	default:
		body = `## Technical Requirements
- Analyze and define specific technical approach
- Identify required technologies and dependencies
- Design implementation strategy
- Consider integration points and dependencies

## Acceptance Criteria
- [ ] Requirements are clearly defined
- [ ] Technical approach is documented
- [ ] Implementation is complete and tested
- [ ] Integration points are verified

## Definition of Done
- Code review is completed
- Tests are written and passing
- Documentation is updated`
	}

	return fmt.Sprintf("## Task Description\n%s\n\n%s", requirement, body)
}
