package service

import (
	"crypto/tls"
	"time"

	"gradebench-backend/internal/config"
	apperrors "gradebench-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// DirectoryPerson is a subset of directory attributes for one person
type DirectoryPerson struct {
	DN        string `json:"dn"`
	Mail      string `json:"mail"`
	GivenName string `json:"givenName"`
	SN        string `json:"sn"`
	CN        string `json:"cn"`
}

// DisplayName returns the best human-readable name for the person
func (p *DirectoryPerson) DisplayName() string {
	if p.GivenName != "" && p.SN != "" {
		return p.GivenName + " " + p.SN
	}
	if p.CN != "" {
		return p.CN
	}
	return p.Mail
}

// DirectoryService resolves people through the institutional LDAP directory.
// With no host configured every lookup is disabled and reconciliation falls
// through to the configured fallback policy.
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// Enabled reports whether directory lookups are configured
func (s *DirectoryService) Enabled() bool {
	return s.cfg.LDAPHost != ""
}

// FindByEmail searches the directory for a person by mail attribute
func (s *DirectoryService) FindByEmail(email string) (*DirectoryPerson, error) {
	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort

	l, err := ldap.DialTLS("tcp", addr, &tls.Config{InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}

	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, err
	}

	filter := "(mail=" + ldap.EscapeFilter(email) + ")"
	attrs := []string{"mail", "givenName", "sn", "cn"}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		1,
		s.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)

	res, err := l.Search(req)
	if err != nil {
		return nil, err
	}
	if len(res.Entries) == 0 {
		return nil, apperrors.NewNotFoundError("directory person")
	}

	e := res.Entries[0]
	return &DirectoryPerson{
		DN:        e.DN,
		Mail:      e.GetAttributeValue("mail"),
		GivenName: e.GetAttributeValue("givenName"),
		SN:        e.GetAttributeValue("sn"),
		CN:        e.GetAttributeValue("cn"),
	}, nil
}
