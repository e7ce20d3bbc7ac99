package metrics

const Namespace = "testdeck"

const (
	LoginResultSuccess   = "success"
	LoginResultFailure   = "failure"
	LoginResultThrottled = "throttled"
)
