package usecase

// Export for testing
var (
	IsSerializationDefect = isSerializationDefect
	VerifyNewestFirst     = verifyNewestFirst
	HasCoverageArtifact   = hasCoverageArtifact
)

const ContainerResourceDefect = containerResourceDefect

// ConfigService exports for testing
type ConfigService = configService

// Export configService methods for testing
func (c *configService) FindConfigInDirectory(dir string) string {
	return c.findConfigInDirectory(dir)
}
