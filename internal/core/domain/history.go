package domain

import "strings"

// PhoneNumberLength is the exact number of digits in a phone number key.
const PhoneNumberLength = 10

// logDelimiter separates entries in the query and response logs.
const logDelimiter = "\n"

// UserHistoryRecord is the persisted question/answer history of one user.
// QueryLog and ResponseLog are parallel, newline-joined logs: the i-th
// non-blank line of one pairs with the i-th non-blank line of the other.
type UserHistoryRecord struct {
	// ID is the storage-assigned primary key.
	ID int64

	// PhoneNumber is the unique user key.
	PhoneNumber string

	// QueryLog holds the questions in append order.
	QueryLog string

	// ResponseLog holds the answers in append order.
	ResponseLog string
}

// Pairs decodes the record's logs into question/answer pairs.
func (r *UserHistoryRecord) Pairs() []QAPair {
	return PairLogs(r.QueryLog, r.ResponseLog)
}

// QAPair is a single question and its answer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ValidatePhoneNumber checks that phone is exactly PhoneNumberLength ASCII digits.
func ValidatePhoneNumber(phone string) error {
	if phone == "" {
		return &ValidationError{Field: "phone number", Reason: "is required"}
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return &ValidationError{Field: "phone number", Reason: "must contain only digits"}
		}
	}
	if len(phone) != PhoneNumberLength {
		return &ValidationError{Field: "phone number", Reason: "must be exactly 10 digits"}
	}
	return nil
}

// ValidateLogEntry rejects text that would break positional pairing once
// appended to a log: blank entries are dropped on read and embedded line
// breaks split one entry into several.
func ValidateLogEntry(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrInvalidInput
	}
	if strings.ContainsAny(text, "\r\n") {
		return ErrInvalidInput
	}
	return nil
}

// AppendLine appends entry to log as a new line.
func AppendLine(log, entry string) string {
	return log + logDelimiter + entry
}

// SplitLog splits a log into its entries, dropping lines that are blank
// after trimming. The retained lines are returned untrimmed.
func SplitLog(log string) []string {
	if log == "" {
		return nil
	}
	var entries []string
	for _, line := range strings.Split(log, logDelimiter) {
		if strings.TrimSpace(line) != "" {
			entries = append(entries, line)
		}
	}
	return entries
}

// PairLogs zips the entries of two logs by position. Pairing stops at the
// shorter log; trailing unmatched entries on either side are dropped.
func PairLogs(queryLog, responseLog string) []QAPair {
	queries := SplitLog(queryLog)
	responses := SplitLog(responseLog)

	n := min(len(queries), len(responses))
	pairs := make([]QAPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, QAPair{Question: queries[i], Answer: responses[i]})
	}
	return pairs
}
