package metadata

import (
	"encoding/xml"
	"fmt"

	"github.com/crewjam/saml"

	"github.com/rciam/caddy-affiliation/internal/core/domain"
)

// rawUIInfo is the subset of mdui:UIInfo this module cares about.
type rawUIInfo struct {
	DisplayNames []domain.LocalizedValue `xml:"DisplayName"`
}

// rawEntityDescriptor is used to parse UIInfo from raw XML, since
// crewjam/saml doesn't expose the mdui extension.
type rawEntityDescriptor struct {
	EntityID          string `xml:"entityID,attr"`
	IDPSSODescriptors []struct {
		Extensions struct {
			UIInfo *rawUIInfo `xml:"urn:oasis:names:tc:SAML:metadata:ui UIInfo"`
		} `xml:"urn:oasis:names:tc:SAML:2.0:metadata Extensions"`
	} `xml:"urn:oasis:names:tc:SAML:2.0:metadata IDPSSODescriptor"`
}

// rawEntitiesDescriptor is used to parse UIInfo from aggregate metadata.
type rawEntitiesDescriptor struct {
	EntityDescriptors   []rawEntityDescriptor   `xml:"urn:oasis:names:tc:SAML:2.0:metadata EntityDescriptor"`
	EntitiesDescriptors []rawEntitiesDescriptor `xml:"urn:oasis:names:tc:SAML:2.0:metadata EntitiesDescriptor"`
}

// ParseMetadata parses SAML metadata XML into party records, supporting both
// single EntityDescriptor and aggregate EntitiesDescriptor formats. Entities
// without an IDPSSODescriptor (e.g. SP metadata) are skipped.
func ParseMetadata(data []byte) ([]domain.PartyMetadata, error) {
	// Parse UIInfo separately since crewjam/saml doesn't expose it
	uiInfoMap := parseAllUIInfo(data)

	// Try EntitiesDescriptor first (aggregate metadata)
	var entities saml.EntitiesDescriptor
	if err := xml.Unmarshal(data, &entities); err == nil &&
		(len(entities.EntityDescriptors) > 0 || len(entities.EntitiesDescriptors) > 0) {
		parties := collectParties(&entities, uiInfoMap)
		if len(parties) == 0 {
			return nil, fmt.Errorf("no identity providers found in aggregate metadata")
		}
		return parties, nil
	}

	// Fall back to single EntityDescriptor
	var ed saml.EntityDescriptor
	if err := xml.Unmarshal(data, &ed); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	party, err := extractParty(&ed, uiInfoMap)
	if err != nil {
		return nil, err
	}
	return []domain.PartyMetadata{*party}, nil
}

// collectParties extracts all identity providers from an aggregate metadata
// document, recursing into nested EntitiesDescriptor elements.
func collectParties(entities *saml.EntitiesDescriptor, uiInfoMap map[string]*rawUIInfo) []domain.PartyMetadata {
	var parties []domain.PartyMetadata

	for i := range entities.EntityDescriptors {
		party, err := extractParty(&entities.EntityDescriptors[i], uiInfoMap)
		if err != nil {
			// Skip entities without IDPSSODescriptor (SPs, etc.)
			continue
		}
		parties = append(parties, *party)
	}

	for i := range entities.EntitiesDescriptors {
		parties = append(parties, collectParties(&entities.EntitiesDescriptors[i], uiInfoMap)...)
	}

	return parties
}

// extractParty builds a PartyMetadata record from a single EntityDescriptor,
// using pre-parsed UIInfo from the map.
func extractParty(ed *saml.EntityDescriptor, uiInfoMap map[string]*rawUIInfo) (*domain.PartyMetadata, error) {
	if ed.EntityID == "" {
		return nil, fmt.Errorf("missing entityID attribute")
	}
	if len(ed.IDPSSODescriptors) == 0 {
		return nil, fmt.Errorf("no IDPSSODescriptor found")
	}

	party := &domain.PartyMetadata{EntityID: ed.EntityID}

	if uiInfo := uiInfoMap[ed.EntityID]; uiInfo != nil {
		party.DisplayNames = domain.LocalizedValuesToMap(uiInfo.DisplayNames)
	}

	if ed.Organization != nil {
		party.Names = organizationNames(ed.Organization)
	}

	return party, nil
}

// organizationNames merges md:OrganizationDisplayName and md:OrganizationName
// into a language-keyed map, display names taking precedence per language.
func organizationNames(org *saml.Organization) map[string]string {
	names := make(map[string]string)
	for _, n := range org.OrganizationNames {
		if n.Value != "" {
			names[n.Lang] = n.Value
		}
	}
	for _, n := range org.OrganizationDisplayNames {
		if n.Value != "" {
			names[n.Lang] = n.Value
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// parseAllUIInfo extracts mdui:UIInfo for every entity in the document,
// keyed by entity ID. Parse failures yield an empty map; UIInfo is optional.
func parseAllUIInfo(data []byte) map[string]*rawUIInfo {
	result := make(map[string]*rawUIInfo)

	var entities rawEntitiesDescriptor
	if err := xml.Unmarshal(data, &entities); err == nil &&
		(len(entities.EntityDescriptors) > 0 || len(entities.EntitiesDescriptors) > 0) {
		collectUIInfo(&entities, result)
		return result
	}

	var entity rawEntityDescriptor
	if err := xml.Unmarshal(data, &entity); err == nil {
		addUIInfo(&entity, result)
	}
	return result
}

func collectUIInfo(entities *rawEntitiesDescriptor, result map[string]*rawUIInfo) {
	for i := range entities.EntityDescriptors {
		addUIInfo(&entities.EntityDescriptors[i], result)
	}
	for i := range entities.EntitiesDescriptors {
		collectUIInfo(&entities.EntitiesDescriptors[i], result)
	}
}

func addUIInfo(entity *rawEntityDescriptor, result map[string]*rawUIInfo) {
	for _, desc := range entity.IDPSSODescriptors {
		if desc.Extensions.UIInfo != nil {
			result[entity.EntityID] = desc.Extensions.UIInfo
			return
		}
	}
}
