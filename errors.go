package gyration

import "fmt"

//Error is the interface all error kinds in this library fulfill. The Decorate
//method allows adding information to the error as it is passed up the calling
//stack, without wrapping it into another type. Each element of the returned
//slice should be a function name in the stack, plus, optionally, extra
//information in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//FileError is the interface for errors associated to an input file.
type FileError interface {
	Error
	FileName() string
}

//Messages used by the error kinds in this and the other packages of the
//library.
const (
	UnableToOpen     = "Unable to open file"
	WrongFormat      = "Wrong format in data table"
	EmptyTable       = "No data rows in table"
	NotEnoughSamples = "Not enough samples"
	BadPolicy        = "Invalid equilibration policy"
	BadConstant      = "Invalid physical constant"
)

//NotFoundError reports an input source that does not exist or could not be
//opened for reading. It fulfills FileError.
type NotFoundError struct {
	message  string
	filename string
	deco     []string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("gyration: %s %s: %s", UnableToOpen, err.filename, err.message)
}

//Decorate adds new information to the error
func (err *NotFoundError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file that could not be read
func (err *NotFoundError) FileName() string { return err.filename }

//Critical returns true. A missing input is always fatal for the run.
func (err *NotFoundError) Critical() bool { return true }

//FormatError reports a source that exists but does not parse as a uniform
//numeric table. line is the 1-based number of the offending line, or 0 when
//the problem concerns the table as a whole (e.g. no data rows at all).
//It fulfills FileError.
type FormatError struct {
	message  string
	filename string
	line     int
	deco     []string
}

func (err *FormatError) Error() string {
	if err.line <= 0 {
		return fmt.Sprintf("gyration: %s: %s", err.filename, err.message)
	}
	return fmt.Sprintf("gyration: %s, line %d: %s", err.filename, err.line, err.message)
}

//Decorate adds new information to the error
func (err *FormatError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file that failed to parse
func (err *FormatError) FileName() string { return err.filename }

//Line returns the 1-based number of the offending line, or 0 when the
//problem is not attributable to a single line.
func (err *FormatError) Line() int { return err.line }

//Critical returns true
func (err *FormatError) Critical() bool { return true }

//InsufficientDataError reports a series or window with too few samples for a
//requested statistic (e.g. fewer than 2 points for a standard deviation or a
//confidence interval, or for the half-tail equilibration heuristic).
type InsufficientDataError struct {
	message string
	n       int
	deco    []string
}

//NewInsufficientData returns an InsufficientDataError for an operation that
//got n samples. It is exported so the statistics subpackages can build the
//same error kind without a circular import.
func NewInsufficientData(message string, n int, caller string) *InsufficientDataError {
	return &InsufficientDataError{message: message, n: n, deco: []string{caller}}
}

func (err *InsufficientDataError) Error() string {
	return fmt.Sprintf("gyration: %s: %s (got %d)", NotEnoughSamples, err.message, err.n)
}

//Decorate adds new information to the error
func (err *InsufficientDataError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//N returns the number of samples that was available
func (err *InsufficientDataError) N() int { return err.n }

//Critical returns true
func (err *InsufficientDataError) Critical() bool { return true }

//ConfigurationError reports an invalid configuration value, such as an
//unknown equilibration policy, a non-positive expected g-factor or a
//confidence level outside (0,1).
type ConfigurationError struct {
	message string
	deco    []string
}

//NewConfiguration returns a ConfigurationError. Exported for the same reason
//as NewInsufficientData.
func NewConfiguration(message string, caller string) *ConfigurationError {
	return &ConfigurationError{message: message, deco: []string{caller}}
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("gyration: %s", err.message)
}

//Decorate adds new information to the error
func (err *ConfigurationError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true
func (err *ConfigurationError) Critical() bool { return true }

//errDecorate asserts that err fulfills Error and decorates it with the
//caller's name before returning it. Calling it with any other error type
//will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics caused by programmer errors (nil
//receivers, out of range indexes). For runtime conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilSeries       = PanicMsg("gyration: nil Series")
	ErrNilWindow       = PanicMsg("gyration: nil Window")
	ErrLengthMismatch  = PanicMsg("gyration: timestep and value slices must have the same length")
	ErrIndexOutOfRange = PanicMsg("gyration: index out of range")
)
