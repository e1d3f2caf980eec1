package emitter

// HeaderTemplate produces the C header that embeds the image bytes.
// The payload string carries its own leading newline and indentation, so the
// array open brace sits at the end of the declaration line and an empty
// payload collapses to an empty array body.
const HeaderTemplate = `#ifndef {{.GuardName}}
#define {{.GuardName}}

// Auto-generated from {{.Basename}}
// File size: {{.Size}} bytes

const unsigned char {{.ArrayName}}[] = {{"{"}}{{.Payload}}
};

const unsigned int {{.SizeName}} = {{.Size}};

#endif // {{.GuardName}}
`
