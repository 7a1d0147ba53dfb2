package types

// Platform is the digital wallet a card template targets.
type Platform string

const (
	PlatformApple  Platform = "apple"
	PlatformGoogle Platform = "google"
)

// Protocol is the access control protocol used by the credential.
type Protocol string

const (
	ProtocolDesfire  Protocol = "desfire"
	ProtocolSeos     Protocol = "seos"
	ProtocolSmartTap Protocol = "smart_tap"
)

// UseCase is what a card template is designed for.
type UseCase string

const (
	UseCaseEmployeeBadge UseCase = "employee_badge"
	UseCaseHotel         UseCase = "hotel"
)

// Classification is the employment classification of a pass holder.
type Classification string

const (
	ClassificationFullTime   Classification = "full_time"
	ClassificationContractor Classification = "contractor"
	ClassificationPartTime   Classification = "part_time"
	ClassificationTemporary  Classification = "temporary"
)

// AccessPassState is the lifecycle state of an access pass.
type AccessPassState string

const (
	AccessPassStateActive    AccessPassState = "active"
	AccessPassStateSuspended AccessPassState = "suspended"
	AccessPassStateUnlinked  AccessPassState = "unlinked"
	AccessPassStateDeleted   AccessPassState = "deleted"
	AccessPassStateExpired   AccessPassState = "expired"
)

// AccountTier is the subscription tier of a Wusul account.
type AccountTier string

const (
	AccountTierBasic        AccountTier = "BASIC"
	AccountTierProfessional AccountTier = "PROFESSIONAL"
	AccountTierEnterprise   AccountTier = "ENTERPRISE"
)

var (
	platforms       = []any{PlatformApple, PlatformGoogle}
	protocols       = []any{ProtocolDesfire, ProtocolSeos, ProtocolSmartTap}
	useCases        = []any{UseCaseEmployeeBadge, UseCaseHotel}
	classifications = []any{ClassificationFullTime, ClassificationContractor, ClassificationPartTime, ClassificationTemporary}
	passStates      = []any{AccessPassStateActive, AccessPassStateSuspended, AccessPassStateUnlinked, AccessPassStateDeleted, AccessPassStateExpired}
)
