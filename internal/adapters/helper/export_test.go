package helper

var (
	RenderLauncher   = renderLauncher
	RenderPathScript = renderPathScript
)
