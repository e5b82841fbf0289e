// Package leetcode simulates a LeetCode MCP server. The single get_problem tool
// returns a canned problem record reshaped from the flat upstream payload.
package leetcode

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"mockmcp"
	"mockmcp/mockapi"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Args are the inputs for get_problem.
type Args struct {
	TitleSlug string `json:"titleSlug" jsonschema:"required" description:"URL slug of the problem as it appears in the LeetCode URL, e.g. 'two-sum'"`
}

// Validate rejects empty and malformed slugs.
func (a Args) Validate() error {
	if strings.TrimSpace(a.TitleSlug) == "" {
		return fmt.Errorf("titleSlug cannot be empty or whitespace")
	}
	if !slugPattern.MatchString(a.TitleSlug) {
		return fmt.Errorf("titleSlug must be lowercase words separated by hyphens, got %q", a.TitleSlug)
	}
	return nil
}

// Problem is the nested problem record.
type Problem struct {
	TitleSlug        string            `json:"titleSlug"`
	QuestionID       string            `json:"questionId"`
	Title            string            `json:"title"`
	Content          string            `json:"content"`
	Difficulty       string            `json:"difficulty"`
	TopicTags        []string          `json:"topicTags"`
	CodeSnippets     []CodeSnippet     `json:"codeSnippets"`
	ExampleTestcases string            `json:"exampleTestcases"`
	Hints            []string          `json:"hints"`
	SimilarQuestions []SimilarQuestion `json:"similarQuestions"`
}

type CodeSnippet struct {
	Lang     string `json:"lang"`
	LangSlug string `json:"langSlug"`
	Code     string `json:"code"`
}

type SimilarQuestion struct {
	TitleSlug  string `json:"titleSlug"`
	Difficulty string `json:"difficulty"`
}

// Result is the response documented for get_problem.
type Result struct {
	TitleSlug string  `json:"titleSlug"`
	Problem   Problem `json:"problem"`
}

// fetchProblem simulates the upstream problem API: flat scalars with compound keys.
func fetchProblem() mockapi.Flat {
	return mockapi.Flat{
		"titleSlug":                             "two-sum",
		"problem_titleSlug":                     "two-sum",
		"problem_questionId":                    "1",
		"problem_title":                         "Two Sum",
		"problem_content":                       "<p>Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.</p>",
		"problem_difficulty":                    "Easy",
		"problem_topicTags_0":                   "array",
		"problem_topicTags_1":                   "hash-table",
		"problem_codeSnippets_0_lang":           "Python3",
		"problem_codeSnippets_0_langSlug":       "python3",
		"problem_codeSnippets_0_code":           "class Solution:\n    def twoSum(self, nums: List[int], target: int) -> List[int]:",
		"problem_codeSnippets_1_lang":           "Java",
		"problem_codeSnippets_1_langSlug":       "java",
		"problem_codeSnippets_1_code":           "public class Solution {\n    public int[] twoSum(int[] nums, int target) {",
		"problem_exampleTestcases":              "nums = [2,7,11,15], target = 9",
		"problem_hints_0":                       "A really brute force way would be to check every pair of indices and see if they sum up to the target.",
		"problem_hints_1":                       "Use a hash map to store the value and its index for O(1) lookups.",
		"problem_similarQuestions_0_titleSlug":  "4sum-ii",
		"problem_similarQuestions_0_difficulty": "Medium",
		"problem_similarQuestions_1_titleSlug":  "subarray-sum-equals-k",
		"problem_similarQuestions_1_difficulty": "Medium",
	}
}

// Tools builds the package's mock tools.
func Tools() ([]mockmcp.Tool, error) {
	getProblem, err := mockmcp.NewTool(
		"get_problem",
		"Retrieve details about a specific LeetCode problem: description, examples, constraints, and related information.",
		func(_ context.Context, a Args) (Result, error) {
			return reshape(fetchProblem()), nil
		},
		mockmcp.WithTags("leetcode"),
	)
	if err != nil {
		return nil, err
	}
	return []mockmcp.Tool{getProblem}, nil
}

// reshape lifts the flat payload into the documented nested structure. The echoed
// slug and list lengths come straight from the flat source.
func reshape(flat mockapi.Flat) Result {
	return Result{
		TitleSlug: flat.Str("titleSlug"),
		Problem: Problem{
			TitleSlug:  flat.Str("problem_titleSlug"),
			QuestionID: flat.Str("problem_questionId"),
			Title:      flat.Str("problem_title"),
			Content:    flat.Str("problem_content"),
			Difficulty: flat.Str("problem_difficulty"),
			TopicTags: []string{
				flat.Str("problem_topicTags_0"),
				flat.Str("problem_topicTags_1"),
			},
			CodeSnippets: []CodeSnippet{
				{
					Lang:     flat.Str("problem_codeSnippets_0_lang"),
					LangSlug: flat.Str("problem_codeSnippets_0_langSlug"),
					Code:     flat.Str("problem_codeSnippets_0_code"),
				},
				{
					Lang:     flat.Str("problem_codeSnippets_1_lang"),
					LangSlug: flat.Str("problem_codeSnippets_1_langSlug"),
					Code:     flat.Str("problem_codeSnippets_1_code"),
				},
			},
			ExampleTestcases: flat.Str("problem_exampleTestcases"),
			Hints: []string{
				flat.Str("problem_hints_0"),
				flat.Str("problem_hints_1"),
			},
			SimilarQuestions: []SimilarQuestion{
				{
					TitleSlug:  flat.Str("problem_similarQuestions_0_titleSlug"),
					Difficulty: flat.Str("problem_similarQuestions_0_difficulty"),
				},
				{
					TitleSlug:  flat.Str("problem_similarQuestions_1_titleSlug"),
					Difficulty: flat.Str("problem_similarQuestions_1_difficulty"),
				},
			},
		},
	}
}
