package domain

var (
	MessageSuccessGetOnboarding      = "onboarding state retrieved successfully"
	MessageSuccessCompleteOnboarding = "onboarding completed"
	MessageSuccessGetCategories      = "categories retrieved successfully"

	MessageFailedCompleteOnboarding = "failed to complete onboarding"
)

type OnboardingResponse struct {
	HasCompletedOnboarding bool `json:"has_completed_onboarding"`
}
