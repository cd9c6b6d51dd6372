package domain

import "time"

// DefaultVotingWindow is how long new proposals accept ballots unless
// the project config overrides it.
const DefaultVotingWindow = 5 * time.Minute
