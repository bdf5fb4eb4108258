// Package skills holds the client-side skills assessment: static question
// banks and local scoring. Results are informational only and never leave
// the terminal.
package skills

import "sort"

// Question is a single multiple-choice item. Correct indexes into Options.
type Question struct {
	Prompt  string
	Options []string
	Correct int
}

// Assessment is a named question bank.
type Assessment struct {
	Name      string
	Questions []Question
}

var assessments = map[string]Assessment{
	"javascript": {
		Name: "JavaScript",
		Questions: []Question{
			{
				Prompt:  "What is the output of: console.log(typeof null)?",
				Options: []string{"null", "undefined", "object", "number"},
				Correct: 2,
			},
			{
				Prompt:  "Which method adds elements to the end of an array?",
				Options: []string{"push()", "pop()", "shift()", "unshift()"},
				Correct: 0,
			},
			{
				Prompt:  "What does the === operator do?",
				Options: []string{"Assigns value", "Compares value only", "Compares value and type", "None"},
				Correct: 2,
			},
			{
				Prompt:  "What is a closure in JavaScript?",
				Options: []string{"A function that returns another function", "A function with access to outer scope", "A way to close the browser", "A loop structure"},
				Correct: 1,
			},
			{
				Prompt:  "Which is NOT a JavaScript data type?",
				Options: []string{"String", "Boolean", "Float", "Symbol"},
				Correct: 2,
			},
		},
	},
	"python": {
		Name: "Python",
		Questions: []Question{
			{
				Prompt:  "What is the output of: print(type([]))?",
				Options: []string{"<class 'array'>", "<class 'list'>", "<class 'tuple'>", "<class 'dict'>"},
				Correct: 1,
			},
			{
				Prompt:  "Which keyword creates a function in Python?",
				Options: []string{"function", "def", "func", "define"},
				Correct: 1,
			},
			{
				Prompt:  "What does 'self' represent in Python classes?",
				Options: []string{"The class itself", "The instance of the class", "A static variable", "None"},
				Correct: 1,
			},
			{
				Prompt:  "Which method adds an element to a list?",
				Options: []string{"add()", "append()", "insert()", "push()"},
				Correct: 1,
			},
			{
				Prompt:  "What is a decorator in Python?",
				Options: []string{"A design pattern", "A function that modifies another function", "A class method", "A variable type"},
				Correct: 1,
			},
		},
	},
	"go": {
		Name: "Go",
		Questions: []Question{
			{
				Prompt:  "What is the zero value of a string in Go?",
				Options: []string{"nil", "\"\"", "0", "undefined"},
				Correct: 1,
			},
			{
				Prompt:  "Which keyword starts a goroutine?",
				Options: []string{"async", "spawn", "go", "run"},
				Correct: 2,
			},
			{
				Prompt:  "How are errors conventionally handled in Go?",
				Options: []string{"try/catch", "Returned as values", "Panics everywhere", "Global error handler"},
				Correct: 1,
			},
			{
				Prompt:  "What does a channel do?",
				Options: []string{"Stores files", "Communicates between goroutines", "Formats strings", "Manages packages"},
				Correct: 1,
			},
			{
				Prompt:  "Which declares an interface satisfied implicitly?",
				Options: []string{"implements keyword", "Any type with the methods", "Explicit registration", "Inheritance"},
				Correct: 1,
			},
		},
	},
}

// Names lists the available assessments, sorted.
func Names() []string {
	names := make([]string, 0, len(assessments))
	for name := range assessments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the assessment for name.
func Get(name string) (Assessment, bool) {
	a, ok := assessments[name]
	return a, ok
}

// Score counts correct answers. Answers shorter than the question list score
// the answered prefix only.
func Score(a Assessment, answers []int) int {
	score := 0
	for i, answer := range answers {
		if i >= len(a.Questions) {
			break
		}
		if answer == a.Questions[i].Correct {
			score++
		}
	}
	return score
}

// Level buckets a score into the label shown to the candidate.
func Level(score, total int) string {
	if total == 0 {
		return "No questions"
	}
	pct := score * 100 / total
	switch {
	case pct >= 80:
		return "Expert"
	case pct >= 60:
		return "Proficient"
	case pct >= 40:
		return "Intermediate"
	default:
		return "Beginner"
	}
}
