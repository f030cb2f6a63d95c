// Package pipeline builds training sets by walking a season's schedule in
// chronological order. For every game it snapshots both teams' accumulated
// feature state, emits one example, and only then folds the game's box score
// into the running state. That ordering is what keeps a game's own result out
// of its own feature vector.
package pipeline
