package InputParameters

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"

	"github.com/notargets/riemann1d/riemann"
)

type StateParameters struct {
	Rho float64 `json:"Rho" validate:"gt=0"`
	P   float64 `json:"P" validate:"gt=0"`
	U   float64 `json:"U"`
}

func (sp StateParameters) GasState() riemann.GasState {
	return riemann.NewGasState(sp.Rho, sp.P, sp.U)
}

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title         string          `json:"Title"`
	Gamma         float64         `json:"Gamma" validate:"gt=1"`
	X0            float64         `json:"X0"`
	XMin          float64         `json:"XMin"`
	XMax          float64         `json:"XMax" validate:"gtfield=XMin"`
	NPts          int             `json:"NPts" validate:"gte=2"`
	Times         []float64       `json:"Times" validate:"min=1,dive,gte=0"`
	Left          StateParameters `json:"Left"`
	Right         StateParameters `json:"Right"`
	MaxIterations int             `json:"MaxIterations" validate:"gte=1"`
	Tolerance     float64         `json:"Tolerance" validate:"gt=0"`
}

// NewCaseParameters returns Sod's shock tube; fields missing from a parsed
// file keep these values
func NewCaseParameters() *CaseParameters {
	return &CaseParameters{
		Title:         "Sod Shock Tube",
		Gamma:         1.4,
		X0:            0.5,
		XMin:          0,
		XMax:          1,
		NPts:          201,
		Times:         []float64{0.2},
		Left:          StateParameters{Rho: 1, P: 1, U: 0},
		Right:         StateParameters{Rho: 0.125, P: 0.1, U: 0},
		MaxIterations: riemann.DefaultMaxIterations,
		Tolerance:     riemann.DefaultTolerance,
	}
}

var validate = validator.New()

func (cp *CaseParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, cp); err != nil {
		return fmt.Errorf("unable to parse case file: %w", err)
	}
	return cp.Validate()
}

func (cp *CaseParameters) Validate() (err error) {
	var (
		verrs validator.ValidationErrors
	)
	if err = validate.Struct(cp); err == nil || !errors.As(err, &verrs) {
		return
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s fails %s=%s (have %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%w: %s", riemann.ErrInvalidInput, strings.Join(msgs, "; "))
}

func ReadFile(fileName string) (cp *CaseParameters, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	cp = NewCaseParameters()
	if err = cp.Parse(data); err != nil {
		return nil, err
	}
	return
}

func (cp *CaseParameters) Solver(opts ...riemann.Option) (*riemann.RiemannSolver, error) {
	opts = append([]riemann.Option{
		riemann.WithMaxIterations(cp.MaxIterations),
		riemann.WithTolerance(cp.Tolerance),
	}, opts...)
	return riemann.NewRiemannSolver(cp.Gamma, opts...)
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", cp.Gamma)
	fmt.Printf("%8.5f\t\t= X0\n", cp.X0)
	fmt.Printf("[%8.5f,%8.5f]\t= Domain\n", cp.XMin, cp.XMax)
	fmt.Printf("[%d]\t\t\t\t= Sample Points\n", cp.NPts)
	fmt.Printf("%v\t\t\t= Times\n", cp.Times)
	fmt.Printf("%s\t= Left\n", cp.Left.GasState())
	fmt.Printf("%s\t= Right\n", cp.Right.GasState())
}
