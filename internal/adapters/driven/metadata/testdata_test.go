package metadata

// Shared SAML metadata fixtures for the parser and directory tests.

const singleEntityXML = `<?xml version="1.0" encoding="UTF-8"?>
<EntityDescriptor xmlns="urn:oasis:names:tc:SAML:2.0:metadata"
                  xmlns:mdui="urn:oasis:names:tc:SAML:metadata:ui"
                  entityID="https://idp.example.org/idp">
  <IDPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol">
    <Extensions>
      <mdui:UIInfo>
        <mdui:DisplayName xml:lang="en">Example University</mdui:DisplayName>
        <mdui:DisplayName xml:lang="de">Beispieluniversit&#228;t</mdui:DisplayName>
      </mdui:UIInfo>
    </Extensions>
    <SingleSignOnService Binding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect"
                         Location="https://idp.example.org/sso"/>
  </IDPSSODescriptor>
  <Organization>
    <OrganizationName xml:lang="en">example-univ</OrganizationName>
    <OrganizationDisplayName xml:lang="en">Example University Org</OrganizationDisplayName>
    <OrganizationURL xml:lang="en">https://www.example.org</OrganizationURL>
  </Organization>
</EntityDescriptor>`

const aggregateXML = `<?xml version="1.0" encoding="UTF-8"?>
<EntitiesDescriptor xmlns="urn:oasis:names:tc:SAML:2.0:metadata"
                    xmlns:mdui="urn:oasis:names:tc:SAML:metadata:ui">
  <EntityDescriptor entityID="https://idp1.example.org/idp">
    <IDPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol">
      <Extensions>
        <mdui:UIInfo>
          <mdui:DisplayName xml:lang="en">First University</mdui:DisplayName>
        </mdui:UIInfo>
      </Extensions>
      <SingleSignOnService Binding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect"
                           Location="https://idp1.example.org/sso"/>
    </IDPSSODescriptor>
  </EntityDescriptor>
  <EntityDescriptor entityID="https://sp.example.org/sp">
    <SPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol">
      <AssertionConsumerService Binding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-POST"
                                Location="https://sp.example.org/acs" index="0"/>
    </SPSSODescriptor>
  </EntityDescriptor>
  <EntityDescriptor entityID="https://idp2.example.org/idp">
    <IDPSSODescriptor protocolSupportEnumeration="urn:oasis:names:tc:SAML:2.0:protocol">
      <SingleSignOnService Binding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect"
                           Location="https://idp2.example.org/sso"/>
    </IDPSSODescriptor>
    <Organization>
      <OrganizationDisplayName xml:lang="en">Second University</OrganizationDisplayName>
    </Organization>
  </EntityDescriptor>
</EntitiesDescriptor>`
