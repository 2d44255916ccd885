package taxonomy

import (
	"slices"

	"github.com/poiesic/sparta/core"
)

// The catalog below mirrors the published SPARTA matrix. Techniques are
// declared nested under their tactic for readability and flattened by
// Default; the declaration order is load-bearing.

type subDef struct {
	id, name, desc string
}

type techniqueDef struct {
	id, name, desc string
	subs           []subDef
}

var defaultTactics = []core.Tactic{
	{ID: "ST0001", Name: "Reconnaissance", Description: "Threat actor is trying to gather information about the space system."},
	{ID: "ST0002", Name: "Resource Development", Description: "Threat actor is trying to establish resources for future operations."},
	{ID: "ST0003", Name: "Initial Access", Description: "Threat actor is trying to get into the space system."},
	{ID: "ST0004", Name: "Execution", Description: "Threat actor is trying to run malicious code on the spacecraft."},
	{ID: "ST0005", Name: "Persistence", Description: "Threat actor is trying to maintain their foothold/access to command/execute code on the spacecraft."},
	{ID: "ST0006", Name: "Defense Evasion", Description: "Threat actor is trying to avoid being detected."},
	{ID: "ST0007", Name: "Lateral Movement", Description: "Threat actor is trying to move through the space system environment."},
	{ID: "ST0008", Name: "Exfiltration", Description: "Threat actor is trying to steal data from the space system."},
	{ID: "ST0009", Name: "Impact", Description: "Threat actor is trying to manipulate, interrupt, or destroy the space system(s) and/or data."},
}

var defaultTechniques = map[string][]techniqueDef{
	"ST0001": {
		{
			id:   "REC-0001",
			name: "Gather Spacecraft Design Information",
			desc: "Threat actors may gather information about the victim spacecraft's design that can be used for future campaigns or to help perpetuate other techniques. Information about the spacecraft can include software, firmware, encryption type, purpose, as well as various makes and models of subsystems.",
			subs: []subDef{
				{id: "REC-0001.01", name: "Software Design", desc: "Threat actors may gather information about the victim spacecraft's internal software that can be used for future campaigns or to help perpetuate other techniques."},
				{id: "REC-0001.02", name: "Firmware", desc: "Threat actors may gather information about the victim spacecraft's firmware that can be used for future campaigns or to help perpetuate other techniques."},
				{id: "REC-0001.03", name: "Cryptographic Algorithms", desc: "Threat actors may gather information about any cryptographic algorithms used on the victim spacecraft's that can be used for future campaigns or to help perpetuate other techniques."},
				{id: "REC-0001.04", name: "Data Bus", desc: "Threat actors may gather information about the data bus used within the victim spacecraft that can be used for future campaigns or to help perpetuate other techniques."},
				{id: "REC-0001.05", name: "Thermal Control System", desc: "Threat actors may gather information about the thermal control system used with the victim spacecraft that can be used for future campaigns or to help perpetuate other techniques."},
				{id: "REC-0001.06", name: "Maneuver & Control", desc: "Threat actors may gather information about the station-keeping control systems within the victim spacecraft that can be used for future campaigns or to help perpetuate other techniques."},
				{id: "REC-0001.07", name: "Payload", desc: "Threat actors may gather information about the type(s) of payloads hosted on the victim spacecraft."},
				{id: "REC-0001.08", name: "Power", desc: "Threat actors may gather information about the power system used within the victim spacecraft."},
				{id: "REC-0001.09", name: "Fault Management", desc: "Threat actors may gather information about any fault management that may be present on the victim spacecraft."},
			},
		},
		{
			id:   "REC-0002",
			name: "Gather Spacecraft Descriptors",
			desc: "Threat actors may gather information about the victim spacecraft's descriptors that can be used for future campaigns or to help perpetuate other techniques.",
			subs: []subDef{
				{id: "REC-0002.01", name: "Identifiers", desc: "Threat actors may gather information about the victim spacecraft's identity attributes."},
				{id: "REC-0002.02", name: "Organization", desc: "Threat actors may gather information about the victim spacecraft's associated organization(s)."},
				{id: "REC-0002.03", name: "Operations", desc: "Threat actors may gather information about the victim spacecraft's operations."},
			},
		},
		{
			id:   "REC-0003",
			name: "Gather Spacecraft Communications Information",
			desc: "Threat actors may obtain information on the victim spacecraft's communication channels in order to determine specific commands, protocols, and types.",
			subs: []subDef{
				{id: "REC-0003.01", name: "Communications Equipment", desc: "Threat actors may gather information regarding the communications equipment and its configuration."},
				{id: "REC-0003.02", name: "Commanding Details", desc: "Threat actors may gather information regarding the commanding approach."},
				{id: "REC-0003.03", name: "Mission-Specific Channel Scanning", desc: "Threat actors may seek knowledge about mission-specific communication channels."},
				{id: "REC-0003.04", name: "Valid Credentials", desc: "Threat actors may seek out valid credentials which can be utilized to facilitate several tactics."},
			},
		},
		{
			id:   "REC-0004",
			name: "Gather Launch Information",
			desc: "Threat actors may gather the launch date and time, location of the launch, organizations involved, launch vehicle, etc.",
			subs: []subDef{
				{id: "REC-0004.01", name: "Flight Termination", desc: "Threat actor may obtain information regarding the vehicle's flight termination system."},
			},
		},
		{
			id:   "REC-0005",
			name: "Eavesdropping",
			desc: "Threat actors may seek to capture network communications throughout the ground station and radio frequency (RF) communication used for uplink and downlink communications.",
			subs: []subDef{
				{id: "REC-0005.01", name: "Uplink Intercept Eavesdropping", desc: "Threat actors may capture the RF communications as it pertains to the uplink to the victim spacecraft."},
				{id: "REC-0005.02", name: "Downlink Intercept", desc: "Threat actors may capture the RF communications as it pertains to the downlink of the victim spacecraft."},
				{id: "REC-0005.03", name: "Proximity Operations", desc: "Threat actors may capture signals and/or network communications as they travel on-board the vehicle."},
				{id: "REC-0005.04", name: "Active Scanning (RF/Optical)", desc: "Threat actors may interfere with the link by actively transmitting packets to activate the transmitter."},
			},
		},
		{
			id:   "REC-0006",
			name: "Gather FSW Development Information",
			desc: "Threat actors may obtain information regarding the flight software (FSW) development environment for the victim spacecraft.",
			subs: []subDef{
				{id: "REC-0006.01", name: "Development Environment", desc: "Threat actors may gather information regarding the development environment for the victim spacecraft's FSW."},
				{id: "REC-0006.02", name: "Security Testing Tools", desc: "Threat actors may gather information regarding how a victim spacecraft is tested."},
			},
		},
		{
			id:   "REC-0007",
			name: "Monitor for Safe-Mode Indicators",
			desc: "Threat actors may gather information regarding safe-mode indicators on the victim spacecraft.",
		},
		{
			id:   "REC-0008",
			name: "Gather Supply Chain Information",
			desc: "Threat actors may gather information about a mission's supply chain or product delivery mechanisms.",
			subs: []subDef{
				{id: "REC-0008.01", name: "Hardware Recon", desc: "Threat actors may gather information to facilitate a future hardware supply chain attack."},
				{id: "REC-0008.02", name: "Software Recon", desc: "Threat actors may gather information relating to the mission's software supply chain."},
				{id: "REC-0008.03", name: "Known Vulnerabilities", desc: "Threat actors may gather information about vulnerabilities that can be used for future campaigns."},
				{id: "REC-0008.04", name: "Business Relationships", desc: "Adversaries may gather information about the victim's business relationships."},
			},
		},
		{
			id:   "REC-0009",
			name: "Gather Mission Information",
			desc: "Threat actors may initially seek to gain an understanding of a target mission by gathering information commonly captured in a Concept of Operations.",
		},
	},
	"ST0002": {
		{
			id:   "RD-0001",
			name: "Acquire Infrastructure",
			desc: "Threat actors may buy, lease, or rent infrastructure that can be used for future campaigns or to perpetuate other techniques.",
			subs: []subDef{
				{id: "RD-0001.01", name: "Ground Station Equipment", desc: "Threat actors will likely need to acquire ground station equipment to establish ground-to-space communications."},
				{id: "RD-0001.02", name: "Commercial Ground Station Services", desc: "Threat actors may buy or rent commercial ground station services."},
				{id: "RD-0001.03", name: "Spacecraft", desc: "Threat actors may acquire their own spacecraft that has the capability to maneuver within close proximity to a target."},
				{id: "RD-0001.04", name: "Launch Facility", desc: "Threat actors may need to acquire a launch facility for launching spacecraft and rockets into space."},
			},
		},
		{
			id:   "RD-0002",
			name: "Compromise Infrastructure",
			desc: "Threat actors may compromise third-party infrastructure that can be used for future campaigns.",
			subs: []subDef{
				{id: "RD-0002.01", name: "Mission-Operated Ground System", desc: "Threat actors may compromise mission owned/operated ground systems."},
				{id: "RD-0002.02", name: "3rd Party Ground System", desc: "Threat actors may compromise access to third-party ground systems."},
				{id: "RD-0002.03", name: "3rd-Party Spacecraft", desc: "Threat actors may compromise a 3rd-party spacecraft."},
			},
		},
		{
			id:   "RD-0003",
			name: "Obtain Cyber Capabilities",
			desc: "Threat actors may buy and/or steal cyber capabilities that can be used for future campaigns.",
			subs: []subDef{
				{id: "RD-0003.01", name: "Exploit/Payload", desc: "Threat actors may buy, steal, or download exploits and payloads."},
				{id: "RD-0003.02", name: "Cryptographic Keys", desc: "Threat actors may obtain encryption keys for commanding the target spacecraft."},
			},
		},
		{
			id:   "RD-0004",
			name: "Stage Capabilities",
			desc: "Threat actors may upload, install, or otherwise set up capabilities for future campaigns.",
			subs: []subDef{
				{id: "RD-0004.01", name: "Identify/Select Delivery Mechanism", desc: "Threat actors may identify, select, and prepare a delivery mechanism."},
				{id: "RD-0004.02", name: "Upload Exploit/Payload", desc: "Threat actors may upload exploits and payloads to a third-party infrastructure."},
			},
		},
		{
			id:   "RD-0005",
			name: "Obtain Non-Cyber Capabilities",
			desc: "Threat actors may obtain non-cyber capabilities, primarily physical counterspace weapons or systems.",
			subs: []subDef{
				{id: "RD-0005.01", name: "Launch Services", desc: "Threat actors may acquire launch capabilities."},
				{id: "RD-0005.02", name: "Non-Kinetic Physical ASAT", desc: "A non-kinetic physical ASAT attack is when a satellite is physically damaged without any direct contact."},
				{id: "RD-0005.03", name: "Kinetic Physical ASAT", desc: "Kinetic physical ASAT attacks attempt to damage or destroy space- or land-based space assets."},
				{id: "RD-0005.04", name: "Electronic ASAT", desc: "Electronic ASAT attacks target the means by which space systems transmit and receive data."},
			},
		},
	},
	"ST0003": {
		{
			id:   "IA-0001",
			name: "Compromise Supply Chain",
			desc: "Threat actors may manipulate or compromise products or product delivery mechanisms before the customer receives them.",
			subs: []subDef{
				{id: "IA-0001.01", name: "Software Dependencies & Development Tools", desc: "Threat actors may manipulate software dependencies and/or development tools."},
				{id: "IA-0001.02", name: "Software Supply Chain", desc: "Threat actors may manipulate software binaries and applications prior to customer receipt."},
				{id: "IA-0001.03", name: "Hardware Supply Chain", desc: "Threat actors may manipulate hardware components in the victim spacecraft."},
			},
		},
		{
			id:   "IA-0002",
			name: "Compromise Software Defined Radio",
			desc: "Threat actors may target software defined radios due to their software nature to establish C2 channels.",
		},
		{
			id:   "IA-0003",
			name: "Crosslink via Compromised Neighbor",
			desc: "Threat actors may compromise a victim spacecraft via the crosslink communications of a neighboring spacecraft.",
		},
		{
			id:   "IA-0004",
			name: "Secondary/Backup Communication Channel",
			desc: "Threat actors may compromise alternative communication pathways which may not be as protected.",
			subs: []subDef{
				{id: "IA-0004.01", name: "Ground Station", desc: "Threat actors may establish a foothold within the backup ground/mission operations center."},
				{id: "IA-0004.02", name: "Receiver", desc: "Threat actors may target the backup/secondary receiver on the spacecraft."},
			},
		},
		{
			id:   "IA-0005",
			name: "Rendezvous & Proximity Operations",
			desc: "Threat actors may perform a space rendezvous to approach very close distance to a target spacecraft.",
			subs: []subDef{
				{id: "IA-0005.01", name: "Compromise Emanations", desc: "Threat actors in close proximity may intercept and analyze electromagnetic radiation."},
				{id: "IA-0005.02", name: "Docked Vehicle / OSAM", desc: "Threat actors may leverage docking vehicles to laterally move into a target spacecraft."},
				{id: "IA-0005.03", name: "Proximity Grappling", desc: "Threat actors may grapple target spacecraft once it has established the appropriate space rendezvous."},
			},
		},
		{
			id:   "IA-0006",
			name: "Compromise Hosted Payload",
			desc: "Threat actors may compromise the target spacecraft hosted payload to initially access and/or persist within the system.",
		},
		{
			id:   "IA-0007",
			name: "Compromise Ground System",
			desc: "Threat actors may initially compromise the ground system in order to access the target spacecraft.",
			subs: []subDef{
				{id: "IA-0007.01", name: "Compromise On-Orbit Update", desc: "Threat actors may manipulate and modify on-orbit updates before they are sent."},
				{id: "IA-0007.02", name: "Malicious Commanding via Valid GS", desc: "Threat actors may compromise target owned ground systems components."},
			},
		},
		{
			id:   "IA-0008",
			name: "Rogue External Entity",
			desc: "Threat actors may gain access to a victim spacecraft through the use of a rogue external entity.",
			subs: []subDef{
				{id: "IA-0008.01", name: "Rogue Ground Station", desc: "Threat actors may gain access through the use of a rogue ground system."},
				{id: "IA-0008.02", name: "Rogue Spacecraft", desc: "Threat actors may gain access using their own spacecraft."},
				{id: "IA-0008.03", name: "ASAT/Counterspace Weapon", desc: "Threat actors may utilize counterspace platforms to access/impact spacecraft."},
			},
		},
		{
			id:   "IA-0009",
			name: "Trusted Relationship",
			desc: "Access through trusted third-party relationship exploits an existing connection.",
			subs: []subDef{
				{id: "IA-0009.01", name: "Mission Collaborator", desc: "Threat actors may seek to exploit mission partners."},
				{id: "IA-0009.02", name: "Vendor", desc: "Threat actors may target the trust between vendors and the target spacecraft."},
				{id: "IA-0009.03", name: "User Segment", desc: "Threat actors can target the user segment in an effort to laterally move."},
			},
		},
		{
			id:   "IA-0010",
			name: "Unauthorized Access During Safe-Mode",
			desc: "Threat actors may target a spacecraft in safe mode to establish initial access.",
		},
		{
			id:   "IA-0011",
			name: "Auxiliary Device Compromise",
			desc: "Threat actors may exploit the auxiliary/peripheral devices that get plugged into spacecrafts.",
		},
		{
			id:   "IA-0012",
			name: "Assembly, Test, and Launch Operation Compromise",
			desc: "Threat actors may target the spacecraft hardware and/or software while at ATLO.",
		},
		{
			id:   "IA-0013",
			name: "Compromise Host Spacecraft",
			desc: "The host space vehicle can serve as an initial access vector to compromise the payload.",
		},
	},
	"ST0004": {
		{
			id:   "EX-0001",
			name: "Replay",
			desc: "Replay attacks involve threat actors recording previously recorded data streams and then resending them.",
			subs: []subDef{
				{id: "EX-0001.01", name: "Command Packets", desc: "Threat actors may interact with the victim spacecraft by replaying captured commands."},
				{id: "EX-0001.02", name: "Bus Traffic Replay", desc: "Threat actors may abuse internal commanding to replay bus traffic."},
			},
		},
		{
			id:   "EX-0002",
			name: "Position, Navigation, and Timing (PNT) Geofencing",
			desc: "Threat actors may leverage spacecraft mobility for location-based malware triggers.",
		},
		{
			id:   "EX-0003",
			name: "Modify Authentication Process",
			desc: "Threat actors may modify the internal authentication process of the victim spacecraft.",
		},
		{
			id:   "EX-0004",
			name: "Compromise Boot Memory",
			desc: "Threat actors may manipulate boot memory to execute malicious code.",
		},
		{
			id:   "EX-0005",
			name: "Exploit Hardware/Firmware Corruption",
			desc: "Threat actors can target the underlying hardware and/or firmware.",
			subs: []subDef{
				{id: "EX-0005.01", name: "Design Flaws", desc: "Threat actors may target design features/flaws with the hardware design."},
				{id: "EX-0005.02", name: "Malicious Use of Hardware Commands", desc: "Threat actors may utilize various hardware commands for malicious activities."},
			},
		},
		{
			id:   "EX-0006",
			name: "Disable/Bypass Encryption",
			desc: "Threat actors may bypass or disable the encryption mechanism onboard the victim spacecraft.",
		},
		{
			id:   "EX-0007",
			name: "Trigger Single Event Upset",
			desc: "Threat actors may utilize techniques to create a single-event upset (SEU).",
		},
		{
			id:   "EX-0008",
			name: "Time Synchronized Execution",
			desc: "Threat actors may develop payloads to be executed at a specific time.",
			subs: []subDef{
				{id: "EX-0008.01", name: "Absolute Time Sequences", desc: "Event is triggered at specific date/time."},
				{id: "EX-0008.02", name: "Relative Time Sequences", desc: "Event is triggered in relation to some other event."},
			},
		},
		{
			id:   "EX-0009",
			name: "Exploit Code Flaws",
			desc: "Threats actors may identify and exploit flaws or weaknesses within the software.",
			subs: []subDef{
				{id: "EX-0009.01", name: "Flight Software", desc: "Threat actors may abuse flight software code flaws."},
				{id: "EX-0009.02", name: "Operating System", desc: "Threat actors may exploit flaws in the operating system code."},
				{id: "EX-0009.03", name: "Known Vulnerability (COTS/FOSS)", desc: "Threat actors may exploit known flaws in commercial or open source software."},
			},
		},
		{
			id:   "EX-0010",
			name: "Malicious Code",
			desc: "Threat actors may execute malicious code on the victim spacecraft.",
			subs: []subDef{
				{id: "EX-0010.01", name: "Ransomware", desc: "Threat actors may encrypt spacecraft data to interrupt availability."},
				{id: "EX-0010.02", name: "Wiper Malware", desc: "Threat actors may deploy wiper malware to destroy data."},
				{id: "EX-0010.03", name: "Rootkit", desc: "Rootkits hide the existence of malware by intercepting OS API calls."},
				{id: "EX-0010.04", name: "Bootkit", desc: "Bootkits persist on systems and evade detection at boot level."},
			},
		},
		{
			id:   "EX-0011",
			name: "Exploit Reduced Protections During Safe-Mode",
			desc: "Threat actors may exploit safe mode to issue malicious commands.",
		},
		{
			id:   "EX-0012",
			name: "Modify On-Board Values",
			desc: "Threat actors may modify onboard values that the victim spacecraft relies on.",
			subs: []subDef{
				{id: "EX-0012.01", name: "Registers", desc: "Threat actors may target the internal registers."},
				{id: "EX-0012.02", name: "Internal Routing Tables", desc: "Threat actors may modify the internal routing tables."},
				{id: "EX-0012.03", name: "Memory Write/Loads", desc: "Threat actors may utilize direct memory access."},
				{id: "EX-0012.04", name: "App/Subscriber Tables", desc: "Threat actors may target the application or subscriber table."},
				{id: "EX-0012.05", name: "Scheduling Algorithm", desc: "Threat actors may target scheduling features."},
				{id: "EX-0012.06", name: "Science/Payload Data", desc: "Threat actors may target the internal payload data."},
				{id: "EX-0012.07", name: "Propulsion Subsystem", desc: "Threat actors may target the propulsion subsystem values."},
				{id: "EX-0012.08", name: "Attitude Determination & Control Subsystem", desc: "Threat actors may target the ADCS values."},
				{id: "EX-0012.09", name: "Electrical Power Subsystem", desc: "Threat actors may target power subsystem."},
				{id: "EX-0012.10", name: "Command & Data Handling Subsystem", desc: "Threat actors may target C&DH values."},
				{id: "EX-0012.11", name: "Watchdog Timer (WDT)", desc: "Threat actors may manipulate the WDT."},
				{id: "EX-0012.12", name: "System Clock", desc: "Adversary may alter the system clock."},
				{id: "EX-0012.13", name: "Poison AI/ML Training Data", desc: "Threat actors may perform data poisoning attacks."},
			},
		},
		{
			id:   "EX-0013",
			name: "Flooding",
			desc: "Threat actors use flooding attacks to disrupt communications.",
			subs: []subDef{
				{id: "EX-0013.01", name: "Valid Commands", desc: "Threat actors may utilize valid commanding as a flooding mechanism."},
				{id: "EX-0013.02", name: "Erroneous Input", desc: "Threat actors inject noise/data/signals into the target channel."},
			},
		},
		{
			id:   "EX-0014",
			name: "Spoofing",
			desc: "Threat actors may attempt to spoof various sensor and controller data.",
			subs: []subDef{
				{id: "EX-0014.01", name: "Time Spoof", desc: "Threat actors may target the internal timers and spoof their data."},
				{id: "EX-0014.02", name: "Bus Traffic Spoofing", desc: "Threat actors may target the main bus and spoof data."},
				{id: "EX-0014.03", name: "Sensor Data", desc: "Threat actors may target sensor data."},
				{id: "EX-0014.04", name: "PNT Spoofing", desc: "Threat actors may spoof GNSS signals."},
				{id: "EX-0014.05", name: "Ballistic Missile Spoof", desc: "Threat actors may launch decoys to spoof missile signatures."},
			},
		},
		{
			id:   "EX-0015",
			name: "Side-Channel Attack",
			desc: "Threat actors may use side-channel attacks to gather information or influence program execution.",
		},
		{
			id:   "EX-0016",
			name: "Jamming",
			desc: "Jamming is an electronic attack that uses RF signals to interfere with communications.",
			subs: []subDef{
				{id: "EX-0016.01", name: "Uplink Jamming", desc: "An uplink jammer interferes with signals going up to a satellite."},
				{id: "EX-0016.02", name: "Downlink Jamming", desc: "Downlink jammers target the users of a satellite."},
				{id: "EX-0016.03", name: "PNT Jamming", desc: "Threat actors may jam GNSS signals."},
			},
		},
		{
			id:   "EX-0017",
			name: "Kinetic Physical Attack",
			desc: "Kinetic physical attacks attempt to damage or destroy space assets.",
			subs: []subDef{
				{id: "EX-0017.01", name: "Direct Ascent ASAT", desc: "A missile launching from Earth to damage or destroy a satellite."},
				{id: "EX-0017.02", name: "Co-Orbital ASAT", desc: "Another satellite in orbit is used to attack."},
			},
		},
		{
			id:   "EX-0018",
			name: "Non-Kinetic Physical Attack",
			desc: "A satellite is physically damaged without any direct contact.",
			subs: []subDef{
				{id: "EX-0018.01", name: "Electromagnetic Pulse (EMP)", desc: "An EMP is an indiscriminate form of attack in space."},
				{id: "EX-0018.02", name: "High-Powered Laser", desc: "A high-powered laser can damage critical satellite components."},
				{id: "EX-0018.03", name: "High-Powered Microwave", desc: "HPM weapons can disrupt or destroy satellite electronics."},
			},
		},
	},
	"ST0005": {
		{
			id:   "PER-0001",
			name: "Memory Compromise",
			desc: "Threat actors may manipulate memory for malicious code to remain on the victim spacecraft.",
		},
		{
			id:   "PER-0002",
			name: "Backdoor",
			desc: "Threat actors may find and target various backdoors within the victim spacecraft.",
			subs: []subDef{
				{id: "PER-0002.01", name: "Hardware Backdoor", desc: "Threat actors may find and target various hardware backdoors."},
				{id: "PER-0002.02", name: "Software Backdoor", desc: "Threat actors may inject code to create their own backdoor."},
			},
		},
		{
			id:   "PER-0003",
			name: "Ground System Presence",
			desc: "Threat actors may compromise target owned ground systems for persistent access.",
		},
		{
			id:   "PER-0004",
			name: "Replace Cryptographic Keys",
			desc: "Threat actors may attempt to fully replace the cryptographic keys on the spacecraft.",
		},
		{
			id:   "PER-0005",
			name: "Credentialed Persistence",
			desc: "Threat actors may acquire or leverage valid credentials to maintain persistent access.",
		},
	},
	"ST0006": {
		{
			id:   "DE-0001",
			name: "Disable Fault Management",
			desc: "Threat actors may disable fault management within the victim spacecraft.",
		},
		{
			id:   "DE-0002",
			name: "Disrupt or Deceive Downlink",
			desc: "Threat actors may target ground-side telemetry reception to disrupt visibility.",
			subs: []subDef{
				{id: "DE-0002.01", name: "Inhibit Ground System Functionality", desc: "Threat actors may utilize access to inhibit ground system telemetry processing."},
				{id: "DE-0002.02", name: "Jam Link Signal", desc: "Threat actors may jam the downlink signal."},
				{id: "DE-0002.03", name: "Inhibit Spacecraft Functionality", desc: "Threat actors may shut down spacecraft's on-board processes."},
			},
		},
		{
			id:   "DE-0003",
			name: "On-Board Values Obfuscation",
			desc: "Threat actors may target various onboard values to hide malicious activity.",
			subs: []subDef{
				{id: "DE-0003.01", name: "Vehicle Command Counter (VCC)", desc: "Threat actors may modify the VCC."},
				{id: "DE-0003.02", name: "Rejected Command Counter", desc: "Threat actors may modify the Rejected Command Counter."},
				{id: "DE-0003.03", name: "Command Receiver On/Off Mode", desc: "Threat actors may modify the command receiver mode."},
				{id: "DE-0003.04", name: "Command Receivers Received Signal Strength", desc: "Threat actors may target signal parameters."},
				{id: "DE-0003.05", name: "Command Receiver Lock Modes", desc: "Threat actors can attempt command lock."},
				{id: "DE-0003.06", name: "Telemetry Downlink Modes", desc: "Threat actors may target downlink modes."},
				{id: "DE-0003.07", name: "Cryptographic Modes", desc: "Threat actors may modify cryptographic modes."},
				{id: "DE-0003.08", name: "Received Commands", desc: "Threat actors may manipulate stored command logs."},
				{id: "DE-0003.09", name: "System Clock for Evasion", desc: "Adversary may alter the system clock."},
				{id: "DE-0003.10", name: "GPS Ephemeris", desc: "Hostile actor could spoof GPS signals."},
				{id: "DE-0003.11", name: "Watchdog Timer (WDT) for Evasion", desc: "Threat actors may manipulate the WDT."},
				{id: "DE-0003.12", name: "Poison AI/ML Training for Evasion", desc: "Threat actors may perform data poisoning."},
			},
		},
		{
			id:   "DE-0004",
			name: "Masquerading",
			desc: "Threat actors may gain access by masquerading as an authorized entity.",
		},
		{
			id:   "DE-0005",
			name: "Subvert Protections via Safe-Mode",
			desc: "Threat actors may exploit safe mode to evade security controls.",
		},
		{
			id:   "DE-0006",
			name: "Modify Whitelist",
			desc: "Threat actors may target whitelists to execute/hide malicious processes.",
		},
		{
			id:   "DE-0007",
			name: "Evasion via Rootkit",
			desc: "Rootkits hide the existence of malware by intercepting OS API calls.",
		},
		{
			id:   "DE-0008",
			name: "Evasion via Bootkit",
			desc: "Bootkits persist on systems and evade detection.",
		},
		{
			id:   "DE-0009",
			name: "Camouflage, Concealment, and Decoys (CCD)",
			desc: "This technique deals with physical aspects of CCD utilized by threat actors.",
			subs: []subDef{
				{id: "DE-0009.01", name: "Debris Field", desc: "Threat actors may hide spacecraft within debris fields."},
				{id: "DE-0009.02", name: "Space Weather", desc: "Threat actors may take advantage of solar activity."},
				{id: "DE-0009.03", name: "Trigger Premature Intercept", desc: "Threat actors may utilize decoy technology."},
				{id: "DE-0009.04", name: "Targeted Deception of Onboard SSA/SDA Sensors", desc: "Threat actors may degrade or manipulate SDA sensors."},
				{id: "DE-0009.05", name: "Corruption or Overload of Ground-Based SDA Systems", desc: "Threat actors may target ground-based SDA systems."},
			},
		},
		{
			id:   "DE-0010",
			name: "Overflow Audit Log",
			desc: "Threat actors may exploit limited logging capacity to conceal activity.",
		},
		{
			id:   "DE-0011",
			name: "Credentialed Evasion",
			desc: "Threat actors may leverage valid credentials to evade detection.",
		},
		{
			id:   "DE-0012",
			name: "Component Collusion",
			desc: "Two or more compromised components operate in coordination to conceal malicious activity.",
		},
	},
	"ST0007": {
		{
			id:   "LM-0001",
			name: "Hosted Payload",
			desc: "Threat actors may use the hosted payload to gain access to other subsystems.",
		},
		{
			id:   "LM-0002",
			name: "Exploit Lack of Bus Segregation",
			desc: "Threat actors may exploit on-board flat architecture for lateral movement.",
		},
		{
			id:   "LM-0003",
			name: "Constellation Hopping via Crosslink",
			desc: "Threat actors may command another neighboring spacecraft via crosslink.",
		},
		{
			id:   "LM-0004",
			name: "Visiting Vehicle Interface(s)",
			desc: "Threat actors may move from one spacecraft to another through visiting vehicle interfaces.",
		},
		{
			id:   "LM-0005",
			name: "Virtualization Escape",
			desc: "Threat actors can use open ports between partitions to overcome hypervisor's protection.",
		},
		{
			id:   "LM-0006",
			name: "Launch Vehicle Interface",
			desc: "Threat actors may exploit interfaces between launch vehicles and payloads.",
			subs: []subDef{
				{id: "LM-0006.01", name: "Rideshare Payload", desc: "Threat actors may move laterally between co-located payloads."},
			},
		},
		{
			id:   "LM-0007",
			name: "Credentialed Traversal",
			desc: "Threat actors may leverage valid credentials to traverse across spacecraft subsystems.",
		},
	},
	"ST0008": {
		{
			id:   "EXF-0001",
			name: "Replay",
			desc: "Threat actors may exfiltrate data by replaying commands and capturing telemetry.",
		},
		{
			id:   "EXF-0002",
			name: "Side-Channel Exfiltration",
			desc: "Threat actors may use side-channel attacks to gather information.",
			subs: []subDef{
				{id: "EXF-0002.01", name: "Power Analysis Attacks", desc: "Threat actors can analyze power consumption to exfiltrate information."},
				{id: "EXF-0002.02", name: "Electromagnetic Leakage Attacks", desc: "Threat actors can leverage electromagnetic emanations."},
				{id: "EXF-0002.03", name: "Traffic Analysis Attacks", desc: "Threat actors use traffic analysis to gather topological information."},
				{id: "EXF-0002.04", name: "Timing Attacks", desc: "Threat actors can leverage timing attacks."},
				{id: "EXF-0002.05", name: "Thermal Imaging attacks", desc: "Threat actors can leverage thermal imaging attacks."},
			},
		},
		{
			id:   "EXF-0003",
			name: "Signal Interception",
			desc: "Threat actors may seek to capture network communications.",
			subs: []subDef{
				{id: "EXF-0003.01", name: "Uplink Exfiltration", desc: "Threat actors may target the uplink connection."},
				{id: "EXF-0003.02", name: "Downlink Exfiltration", desc: "Threat actors may target the downlink connection."},
			},
		},
		{
			id:   "EXF-0004",
			name: "Out-of-Band Communications Link",
			desc: "Threat actors may attempt to exfiltrate data via out-of-band communication channels.",
		},
		{
			id:   "EXF-0005",
			name: "Proximity Operations",
			desc: "Threat actors may leverage lack of emission security to exfiltrate information.",
		},
		{
			id:   "EXF-0006",
			name: "Modify Communications Configuration",
			desc: "Threat actors can manipulate communications equipment to exfiltrate data.",
			subs: []subDef{
				{id: "EXF-0006.01", name: "Software Defined Radio", desc: "Threat actors may target SDRs to setup exfiltration channels."},
				{id: "EXF-0006.02", name: "Transponder", desc: "Threat actors may change the transponder configuration."},
			},
		},
		{
			id:   "EXF-0007",
			name: "Compromised Ground System",
			desc: "Threat actors may compromise target owned ground systems.",
		},
		{
			id:   "EXF-0008",
			name: "Compromised Developer Site",
			desc: "Threat actors may compromise development environments.",
		},
		{
			id:   "EXF-0009",
			name: "Compromised Partner Site",
			desc: "Threat actors may compromise access to partner sites.",
		},
		{
			id:   "EXF-0010",
			name: "Payload Communication Channel",
			desc: "Threat actors can deploy malicious software on the payload for data exfiltration.",
		},
	},
	"ST0009": {
		{
			id:   "IMP-0001",
			name: "Deception (or Misdirection)",
			desc: "Measures designed to mislead an adversary by manipulation, distortion, or falsification of evidence.",
		},
		{
			id:   "IMP-0002",
			name: "Disruption",
			desc: "Measures designed to temporarily impair the use or access to a system for a period of time.",
		},
		{
			id:   "IMP-0003",
			name: "Denial",
			desc: "Measures designed to temporarily eliminate the use, access, or operation of a system.",
		},
		{
			id:   "IMP-0004",
			name: "Degradation",
			desc: "Measures designed to permanently impair the use of a system.",
		},
		{
			id:   "IMP-0005",
			name: "Destruction",
			desc: "Measures designed to permanently eliminate the use of a system.",
		},
		{
			id:   "IMP-0006",
			name: "Theft",
			desc: "Threat actors may attempt to steal the data being gathered, processed, and sent from the spacecraft.",
		},
	},
}

// Default returns the built-in SPARTA catalog. Each call returns a fresh
// Taxonomy; the underlying data is fixed at compile time.
func Default() *Taxonomy {
	tax := &Taxonomy{
		Tactics: slices.Clone(defaultTactics),
	}
	for _, tac := range defaultTactics {
		for _, td := range defaultTechniques[tac.ID] {
			tech := core.Technique{
				ID:          td.id,
				Name:        td.name,
				Description: td.desc,
				TacticID:    tac.ID,
			}
			for _, sd := range td.subs {
				tech.SubTechniqueIDs = append(tech.SubTechniqueIDs, sd.id)
				tax.SubTechniques = append(tax.SubTechniques, core.SubTechnique{
					ID:          sd.id,
					Name:        sd.name,
					Description: sd.desc,
					ParentID:    td.id,
				})
			}
			tax.Techniques = append(tax.Techniques, tech)
		}
	}
	return tax
}
