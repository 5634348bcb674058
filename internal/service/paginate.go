package service

// QuestionsPerPage is the fixed size of a page of questions
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages outside the collection,
// including pages below 1, are empty.
func Paginate[T any](items []T, page int) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	// compare page counts before multiplying so huge pages cannot overflow
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
