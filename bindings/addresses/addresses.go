// Package addresses lists the package ids the bindings were generated
// against. Type names use the original package id; move calls target the
// published-at id, which moves on every package upgrade.
package addresses

const (
	MoveStdlib = "0x1"
	Sui        = "0x2"

	Launchpad    = "0xc74531639fadfb02d30f05f37de4cf1e1149ed8d23658edd089004830068180b"
	Originmate   = "0xed6c6fe0732be937f4379bc0b471f0f6bfbe0e8741968009e0f01e6de3d59f32"
	Permissions  = "0x16c5f17f2d55584a6e6daa442ccf83b4530d10546a8e7dedda9ba324e012fc40"
	Utils        = "0x859eb18bd5b5e8cc32deb6dfb1c39941008ab3c6e27f0b8ce2364be7102bb7cb"
	NftProtocol  = "0xbc3df36be17f27ac98e3c839b2589db8475fa07b20657b08e8891e3aaf5ee5f9"
	Pseudorandom = "0x9e5962d5183664be8a7762fbe94eee6e3457c0cc701750c94c17f7f8ac5a32fb"
)

const (
	LaunchpadPublishedAt    = Launchpad
	OriginmatePublishedAt   = Originmate
	PermissionsPublishedAt  = Permissions
	UtilsPublishedAt        = Utils
	NftProtocolPublishedAt  = NftProtocol
	PseudorandomPublishedAt = Pseudorandom
)
