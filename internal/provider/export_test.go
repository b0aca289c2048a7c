package provider

func resetDiagnostics() {
	SetDevelopment(false, nil)
	diagnostics.warned.Store(false)
}
