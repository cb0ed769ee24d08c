package models

// FileConflict names a declared file that could not be reserved because
// another live agent holds it.
type FileConflict struct {
	Path      string `json:"path"`
	Holder    string `json:"holder"`
	ExpiresAt int64  `json:"expires_at"`
}

// ClaimOutcome is the result of ClaimNext. Exactly one of Claimed or
// NoneAvailable is set; "no work" is an outcome, not an error.
type ClaimOutcome struct {
	Claimed       *ClaimedTask   `json:"claimed,omitempty"`
	NoneAvailable *NoneAvailable `json:"none_available,omitempty"`
}

// ClaimedTask reports a successful claim: the task was transitioned to
// LEASED and zero or more of its declared files were reserved.
// ConflictedFiles is non-empty when eager leasing was partial; the caller
// decides whether to proceed or release and retry.
type ClaimedTask struct {
	Task            Task           `json:"task"`
	Lease           Lease          `json:"lease"`
	AcquiredFiles   []string       `json:"acquired_files"`
	ConflictedFiles []FileConflict `json:"conflicted_files,omitempty"`
}

// NoneAvailable reports that no task matched the filters or every
// candidate lost a race. ReadyPreview lists up to a handful of ready
// tasks for diagnostics.
type NoneAvailable struct {
	ReadyPreview []Task `json:"ready_preview,omitempty"`
}

// ReadyPreviewLimit caps the diagnostics preview returned with
// NoneAvailable and by dry-run claims.
const ReadyPreviewLimit = 5
