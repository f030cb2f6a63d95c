package pipeline

import "fmt"

// DataOrderingError reports a schedule row that arrived out of chronological
// order. The pipeline treats this as fatal: silently continuing would leak
// future results into earlier feature vectors.
type DataOrderingError struct {
	Year     int
	GameCode string
}

func (e *DataOrderingError) Error() string {
	return fmt.Sprintf("season %d: game %s is out of chronological order", e.Year, e.GameCode)
}
