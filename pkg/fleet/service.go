// Package fleet turns a fleet manifest into ships and containers and
// executes loading plans against them. Rejections are business-rule
// outcomes, not failures: plan execution records them and keeps going.
package fleet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/deploymenttheory/go-cargoship/internal/config"
	"github.com/deploymenttheory/go-cargoship/internal/containers"
	"github.com/deploymenttheory/go-cargoship/internal/hazard"
	"github.com/deploymenttheory/go-cargoship/internal/interfaces"
	"github.com/deploymenttheory/go-cargoship/internal/ship"
	"github.com/deploymenttheory/go-cargoship/internal/types"
)

// Plan step actions understood by ExecutePlan.
const (
	ActionLoadCargo    = "load-cargo"
	ActionUnloadCargo  = "unload-cargo"
	ActionBoard        = "board"
	ActionDisembark    = "disembark"
	ActionTransfer     = "transfer"
	ActionReplace      = "replace"
	ActionNotifyHazard = "notify-hazard"
)

// Service builds fleets from manifests and executes loading plans.
type Service struct {
	logger   *zap.Logger
	observer interfaces.HazardObserver
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for plan execution and, unless overridden,
// the hazard observer backing it.
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithHazardObserver sets the observer wired into every container the
// service builds.
func WithHazardObserver(observer interfaces.HazardObserver) ServiceOption {
	return func(s *Service) {
		s.observer = observer
	}
}

// NewService creates a fleet service. Without options it logs nowhere and
// routes hazard notifications to the logger.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.observer == nil {
		s.observer = hazard.NewLogObserver(s.logger)
	}
	return s
}

// Build constructs the ships and container pool declared by the manifest.
// Manifest-level mistakes (unknown kinds, duplicate names or serials) are
// errors here; loading-rule violations only surface during plan execution.
func (s *Service) Build(cfg *config.FleetConfig) (*Fleet, error) {
	f := &Fleet{
		ships:      make(map[string]*ship.Ship),
		containers: make(map[string]interfaces.CargoContainer),
	}

	for _, sc := range cfg.Ships {
		if _, exists := f.ships[sc.Name]; exists {
			return nil, fmt.Errorf("duplicate ship name %q in manifest", sc.Name)
		}
		vessel, err := ship.New(sc.Name, sc.MaxSpeed, sc.MaxWeightTonnes, sc.MaxContainerCount)
		if err != nil {
			return nil, err
		}
		f.ships[sc.Name] = vessel
		f.shipOrder = append(f.shipOrder, sc.Name)
	}

	for _, cc := range cfg.Containers {
		c, err := s.buildContainer(cc)
		if err != nil {
			return nil, err
		}
		if _, exists := f.containers[c.SerialNumber()]; exists {
			return nil, fmt.Errorf("duplicate container serial number %q in manifest", c.SerialNumber())
		}
		f.containers[c.SerialNumber()] = c
		f.containerOrder = append(f.containerOrder, c.SerialNumber())
	}

	return f, nil
}

func (s *Service) buildContainer(cc config.ContainerConfig) (interfaces.CargoContainer, error) {
	kind, err := types.ParseContainerKind(cc.Kind)
	if err != nil {
		return nil, err
	}

	opts := []containers.Option{containers.WithHazardObserver(s.observer)}
	if cc.SerialNumber != "" {
		opts = append(opts, containers.WithSerialNumber(cc.SerialNumber))
	}

	switch kind {
	case types.KindLiquid:
		return containers.NewLiquidContainer(cc.Height, cc.TareWeight, cc.Depth, cc.MaxLoad, cc.Hazardous, opts...)
	case types.KindGas:
		return containers.NewGasContainer(cc.Height, cc.TareWeight, cc.Depth, cc.MaxLoad, cc.Pressure, opts...)
	case types.KindRefrigerated:
		return containers.NewRefrigeratedContainer(cc.Height, cc.TareWeight, cc.Depth, cc.MaxLoad, cc.ProductType, cc.Temperature, opts...)
	default:
		return nil, fmt.Errorf("unsupported container kind %q", kind)
	}
}

// ExecutePlan runs every step of the plan in order against the fleet,
// recording one result per step. A rejected step is logged and execution
// continues with the next one.
func (s *Service) ExecutePlan(f *Fleet, plan []config.Step) *Report {
	report := &Report{Results: make([]StepResult, 0, len(plan))}

	for i, step := range plan {
		detail, err := s.executeStep(f, step)
		if err != nil {
			s.logger.Warn("plan step rejected",
				zap.Int("step", i+1),
				zap.String("action", step.Action),
				zap.Error(err),
			)
		} else {
			s.logger.Info("plan step accepted",
				zap.Int("step", i+1),
				zap.String("action", step.Action),
				zap.String("detail", detail),
			)
		}
		report.Results = append(report.Results, StepResult{Index: i, Step: step, Detail: detail, Err: err})
	}

	return report
}

func (s *Service) executeStep(f *Fleet, step config.Step) (string, error) {
	switch step.Action {
	case ActionLoadCargo:
		c, ok := f.Container(step.Serial)
		if !ok {
			return "", fmt.Errorf("unknown container serial number %q", step.Serial)
		}
		if err := c.Load(step.Mass); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s loaded with %.2f kg", c.SerialNumber(), step.Mass), nil

	case ActionUnloadCargo:
		c, ok := f.Container(step.Serial)
		if !ok {
			return "", fmt.Errorf("unknown container serial number %q", step.Serial)
		}
		c.Unload()
		return fmt.Sprintf("%s unloaded, %.2f kg remaining", c.SerialNumber(), c.LoadMass()), nil

	case ActionBoard:
		vessel, ok := f.Ship(step.Ship)
		if !ok {
			return "", fmt.Errorf("unknown ship %q", step.Ship)
		}
		c, ok := f.Container(step.Serial)
		if !ok {
			return "", fmt.Errorf("unknown container serial number %q", step.Serial)
		}
		if err := vessel.LoadContainer(c); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s boarded %s", c.SerialNumber(), vessel.Name()), nil

	case ActionDisembark:
		vessel, ok := f.Ship(step.Ship)
		if !ok {
			return "", fmt.Errorf("unknown ship %q", step.Ship)
		}
		c, err := vessel.UnloadContainer(step.Serial)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s disembarked from %s", c.SerialNumber(), vessel.Name()), nil

	case ActionTransfer:
		from, ok := f.Ship(step.Ship)
		if !ok {
			return "", fmt.Errorf("unknown ship %q", step.Ship)
		}
		to, ok := f.Ship(step.Target)
		if !ok {
			return "", fmt.Errorf("unknown ship %q", step.Target)
		}
		if err := ship.Transfer(from, to, step.Serial); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s transferred from %s to %s", step.Serial, from.Name(), to.Name()), nil

	case ActionReplace:
		vessel, ok := f.Ship(step.Ship)
		if !ok {
			return "", fmt.Errorf("unknown ship %q", step.Ship)
		}
		replacement, ok := f.Container(step.Replacement)
		if !ok {
			return "", fmt.Errorf("unknown container serial number %q", step.Replacement)
		}
		if err := vessel.ReplaceContainer(step.Serial, replacement); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s replaced by %s on %s", step.Serial, replacement.SerialNumber(), vessel.Name()), nil

	case ActionNotifyHazard:
		c, ok := f.Container(step.Serial)
		if !ok {
			return "", fmt.Errorf("unknown container serial number %q", step.Serial)
		}
		notifier, ok := c.(interfaces.HazardNotifier)
		if !ok {
			return "", fmt.Errorf("container %s cannot emit hazard notifications", c.SerialNumber())
		}
		notifier.NotifyHazard(step.Message)
		return fmt.Sprintf("%s notified: %s", c.SerialNumber(), step.Message), nil

	default:
		return "", fmt.Errorf("unknown plan action %q", step.Action)
	}
}

// Describe renders every ship and the container pool of the fleet.
func (s *Service) Describe(f *Fleet) string {
	out := ""
	for _, vessel := range f.Ships() {
		out += vessel.Describe()
	}
	for _, c := range f.Containers() {
		out += containers.Describe(c) + "\n"
	}
	return out
}
