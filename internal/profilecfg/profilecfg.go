// profilecfg adapts the AWS shared config file as the profile
// configuration store. Reads are lock-free; the single write path
// (attaching an MFA device) takes a file lock around the
// read-modify-save so concurrent attaches cannot clobber each other.
package profilecfg

import (
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/werf/lockgate"
	"github.com/werf/lockgate/pkg/file_locker"
	ini "gopkg.in/ini.v1"

	"github.com/shaws/shaws/internal/session"
)

const (
	mfaSerialKey     = "mfa_serial"
	roleArnKey       = "role_arn"
	sourceProfileKey = "source_profile"
)

var (
	ErrConfigFailure       = errors.New("config error")
	ErrUnableToAcquireLock = errors.New("cannot acquire lock")
)

// Store reads and writes named profile sections of the shared config.
type Store struct {
	path         string
	locker       lockgate.Locker
	lockResource string
}

// ConfigFilePath honours AWS_CONFIG_FILE, falling back to ~/.aws/config.
func ConfigFilePath() string {
	if overridden, exists := os.LookupEnv("AWS_CONFIG_FILE"); exists {
		return overridden
	}
	return path.Join(homeDir(), ".aws", "config")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func New(configPath string) (*Store, error) {
	lockDir := path.Join(path.Dir(configPath), fmt.Sprintf(".%s-lock", session.SELF_NAME))
	locker, err := file_locker.NewFileLocker(lockDir)
	if err != nil {
		return nil, fmt.Errorf("cannot setup lock dir: %s, %w", lockDir, ErrConfigFailure)
	}
	return &Store{
		path:         configPath,
		locker:       locker,
		lockResource: session.SELF_NAME,
	}, nil
}

// Profile returns the named profile's settings. A missing config file or
// section yields an empty record so callers surface the domain error
// ("no MFA device attached") rather than an I/O complaint.
func (s *Store) Profile(name string) (session.Profile, error) {
	p := session.Profile{Name: name}

	cfg, err := ini.LooseLoad(s.path)
	if err != nil {
		return p, fmt.Errorf("fail to read config file: %s, %w", err, ErrConfigFailure)
	}

	sct := cfg.Section(sectionName(name))
	p.MFASerial = sct.Key(mfaSerialKey).String()
	p.RoleArn = sct.Key(roleArnKey).String()
	p.SourceProfile = sct.Key(sourceProfileKey).String()
	return p, nil
}

// AttachDevice writes mfa_serial for the named profile. The serial is not
// validated beyond being non-empty.
func (s *Store) AttachDevice(name, mfaSerial string) error {
	if mfaSerial == "" {
		return fmt.Errorf("mfa serial must not be empty, %w", session.ErrInvalidInput)
	}

	release, err := s.ensureLock()
	if err != nil {
		return err
	}
	defer release()

	if err := os.MkdirAll(path.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("fail to create config dir: %s, %w", err, ErrConfigFailure)
	}

	cfg, err := ini.LooseLoad(s.path)
	if err != nil {
		return fmt.Errorf("fail to read config file: %s, %w", err, ErrConfigFailure)
	}
	cfg.Section(sectionName(name)).Key(mfaSerialKey).SetValue(mfaSerial)
	if err := cfg.SaveTo(s.path); err != nil {
		return fmt.Errorf("fail to write config file: %s, %w", err, ErrConfigFailure)
	}
	return nil
}

func (s *Store) ensureLock() (func(), error) {
	acquired, lock, err := s.locker.Acquire(s.lockResource, lockgate.AcquireOptions{Shared: false, Timeout: 1 * time.Minute})
	if err != nil {
		return nil, fmt.Errorf("%s, %w", err, ErrUnableToAcquireLock)
	}
	if !acquired {
		return nil, fmt.Errorf("lock held elsewhere, %w", ErrUnableToAcquireLock)
	}
	return func() {
		if err := s.locker.Release(lock); err != nil {
			fmt.Fprintf(os.Stderr, "failed to release lock: %s\n", err)
		}
	}, nil
}

// sectionName maps a profile name to its shared-config section, which the
// AWS CLI spells as `[profile NAME]` for everything except `[default]`.
func sectionName(name string) string {
	if name == session.DEFAULT_PROFILE {
		return session.DEFAULT_PROFILE
	}
	return "profile " + name
}
