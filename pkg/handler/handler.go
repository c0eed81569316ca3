package handler

const (
	// CompanionServiceName is the fully qualified gRPC service name
	CompanionServiceName = "stepcompanion.v1.CompanionService"

	// Full method names, as seen by interceptors
	RecordStepsMethod  = "/" + CompanionServiceName + "/RecordSteps"
	CryMethod          = "/" + CompanionServiceName + "/Cry"
	GetCompanionMethod = "/" + CompanionServiceName + "/GetCompanion"
)
