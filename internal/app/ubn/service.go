package ubn

//go:generate mockery --name=Validator --output=../../infra/transport/console --outpkg=console --filename=mock_validator_test.go --structname=MockValidator --with-expecter

// Validator defines a contract for checking uniform numbers.
// Check returns nil when number is valid.
type Validator interface {
	Check(number string) error
}

var _ Validator = (*ChecksumValidator)(nil)
