package metrics

import "trapcheck/types"

const (
	credibilityBase = 50

	// Review-count tiers
	experiencedReviewerMin   = 100
	experiencedReviewerBonus = 25
	moderateReviewerMin      = 20
	moderateReviewerBonus    = 15
	activeReviewerMin        = 5
	activeReviewerBonus      = 5
	newAccountMax            = 3
	newAccountPenalty        = 20

	// Photo-count tiers
	photoContributorMin   = 50
	photoContributorBonus = 15
	somePhotosMin         = 10
	somePhotosBonus       = 10
	noPhotosPenalty       = 10

	verifiedLocalBonus = 20
)

// ScoreReviewer computes a 0-100 trust score for a reviewer from their
// review count, photo count, and verified-local status. The score is
// transparent on purpose: every tier that fires leaves a flag so the
// downstream prompt can cite why a reviewer was trusted.
func ScoreReviewer(r types.Reviewer) types.CredibilityScore {
	score := credibilityBase
	flags := []string{}

	switch {
	case r.ReviewCount >= experiencedReviewerMin:
		score += experiencedReviewerBonus
		flags = append(flags, "experienced_reviewer")
	case r.ReviewCount >= moderateReviewerMin:
		score += moderateReviewerBonus
		flags = append(flags, "moderate_reviewer")
	case r.ReviewCount >= activeReviewerMin:
		score += activeReviewerBonus
	case r.ReviewCount <= newAccountMax:
		score -= newAccountPenalty
		flags = append(flags, "new_account")
	}

	switch {
	case r.PhotoCount >= photoContributorMin:
		score += photoContributorBonus
		flags = append(flags, "photo_contributor")
	case r.PhotoCount >= somePhotosMin:
		score += somePhotosBonus
	case r.PhotoCount == 0:
		score -= noPhotosPenalty
		flags = append(flags, "no_photos")
	}

	if r.IsVerifiedLocal {
		score += verifiedLocalBonus
		flags = append(flags, "local_guide")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.CredibilityScore{
		Score:           score,
		Flags:           flags,
		ReviewCount:     r.ReviewCount,
		PhotoCount:      r.PhotoCount,
		IsVerifiedLocal: r.IsVerifiedLocal,
	}
}
