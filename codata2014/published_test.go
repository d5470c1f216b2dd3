package codata2014_test

import (
	"github.com/katalvlaran/codata/codata2014"
	"github.com/katalvlaran/codata/internal/codatatest"
)

// published lists the literals of the 2014 adjustment, one row per constant.
var published = []codatatest.Published{
	{Constant: codata2014.AlphaParticleElectronMassRatio(), Value: 7294.29954136, Uncertainty: 2.4e-07},
	{Constant: codata2014.AlphaParticleMass(), Value: 6.64465723e-27, Uncertainty: 8.2e-35},
	{Constant: codata2014.AlphaParticleMassEnergyEquivalent(), Value: 5.971920097e-10, Uncertainty: 7.3e-18},
	{Constant: codata2014.AlphaParticleMassEnergyEquivalentInMeV(), Value: 3727.379378, Uncertainty: 2.3e-05},
	{Constant: codata2014.AlphaParticleMassInU(), Value: 4.001506179127, Uncertainty: 6.3e-11},
	{Constant: codata2014.AlphaParticleMolarMass(), Value: 0.004001506179127, Uncertainty: 6.3e-14},
	{Constant: codata2014.AlphaParticleProtonMassRatio(), Value: 3.97259968907, Uncertainty: 3.6e-10},
	{Constant: codata2014.AngstromStar(), Value: 1.00001495e-10, Uncertainty: 9e-17},
	{Constant: codata2014.AtomicMassConstant(), Value: 1.66053904e-27, Uncertainty: 2e-35},
	{Constant: codata2014.AtomicMassConstantEnergyEquivalent(), Value: 1.492418062e-10, Uncertainty: 1.8e-18},
	{Constant: codata2014.AtomicMassConstantEnergyEquivalentInMeV(), Value: 931.4940954, Uncertainty: 5.7e-06},
	{Constant: codata2014.AtomicMassUnitElectronVoltRelationship(), Value: 9.314940954e+08, Uncertainty: 5.7},
	{Constant: codata2014.AtomicMassUnitHartreeRelationship(), Value: 3.4231776902e+07, Uncertainty: 0.016},
	{Constant: codata2014.AtomicMassUnitHertzRelationship(), Value: 2.2523427206e+23, Uncertainty: 1e+14},
	{Constant: codata2014.AtomicMassUnitInverseMeterRelationship(), Value: 7.5130066166e+14, Uncertainty: 340000},
	{Constant: codata2014.AtomicMassUnitJouleRelationship(), Value: 1.492418062e-10, Uncertainty: 1.8e-18},
	{Constant: codata2014.AtomicMassUnitKelvinRelationship(), Value: 1.08095438e+13, Uncertainty: 6.2e+06},
	{Constant: codata2014.AtomicMassUnitKilogramRelationship(), Value: 1.66053904e-27, Uncertainty: 2e-35},
	{Constant: codata2014.AtomicUnitOf1stHyperpolarizability(), Value: 3.206361329e-53, Uncertainty: 2e-61},
	{Constant: codata2014.AtomicUnitOf2ndHyperpolarizability(), Value: 6.235380085e-65, Uncertainty: 7.7e-73},
	{Constant: codata2014.AtomicUnitOfAction(), Value: 1.0545718e-34, Uncertainty: 1.3e-42},
	{Constant: codata2014.AtomicUnitOfCharge(), Value: 1.6021766208e-19, Uncertainty: 9.8e-28},
	{Constant: codata2014.AtomicUnitOfChargeDensity(), Value: 1.081202377e+12, Uncertainty: 6700},
	{Constant: codata2014.AtomicUnitOfCurrent(), Value: 0.006623618183, Uncertainty: 4.1e-11},
	{Constant: codata2014.AtomicUnitOfElectricDipoleMom(), Value: 8.478353552e-30, Uncertainty: 5.2e-38},
	{Constant: codata2014.AtomicUnitOfElectricField(), Value: 5.142206707e+11, Uncertainty: 3200},
	{Constant: codata2014.AtomicUnitOfElectricFieldGradient(), Value: 9.717362356e+21, Uncertainty: 6e+13},
	{Constant: codata2014.AtomicUnitOfElectricPolarizability(), Value: 1.6487772731e-41, Uncertainty: 1.1e-50},
	{Constant: codata2014.AtomicUnitOfElectricPotential(), Value: 27.21138602, Uncertainty: 1.7e-07},
	{Constant: codata2014.AtomicUnitOfElectricQuadrupoleMom(), Value: 4.486551484e-40, Uncertainty: 2.8e-48},
	{Constant: codata2014.AtomicUnitOfEnergy(), Value: 4.35974465e-18, Uncertainty: 5.4e-26},
	{Constant: codata2014.AtomicUnitOfForce(), Value: 8.23872336e-08, Uncertainty: 1e-15},
	{Constant: codata2014.AtomicUnitOfLength(), Value: 5.2917721067e-11, Uncertainty: 1.2e-20},
	{Constant: codata2014.AtomicUnitOfMagDipoleMom(), Value: 1.854801999e-23, Uncertainty: 1.1e-31},
	{Constant: codata2014.AtomicUnitOfMagFluxDensity(), Value: 235051.755, Uncertainty: 0.0014},
	{Constant: codata2014.AtomicUnitOfMagnetizability(), Value: 7.8910365886e-29, Uncertainty: 9e-38},
	{Constant: codata2014.AtomicUnitOfMass(), Value: 9.10938356e-31, Uncertainty: 1.1e-38},
	{Constant: codata2014.AtomicUnitOfMomentum(), Value: 1.992851882e-24, Uncertainty: 2.4e-32},
	{Constant: codata2014.AtomicUnitOfPermittivity(), Value: 1.112650056e-10, Uncertainty: 0},
	{Constant: codata2014.AtomicUnitOfTime(), Value: 2.418884326509e-17, Uncertainty: 1.4e-28},
	{Constant: codata2014.AtomicUnitOfVelocity(), Value: 2.18769126277e+06, Uncertainty: 0.0005},
	{Constant: codata2014.AvogadroConstant(), Value: 6.022140857e+23, Uncertainty: 7.4e+15},
	{Constant: codata2014.BohrMagneton(), Value: 9.274009994e-24, Uncertainty: 5.7e-32},
	{Constant: codata2014.BohrMagnetonInEVT(), Value: 5.7883818012e-05, Uncertainty: 2.6e-14},
	{Constant: codata2014.BohrMagnetonInHzT(), Value: 1.3996245042e+10, Uncertainty: 86},
	{Constant: codata2014.BohrMagnetonInInverseMetersPerTesla(), Value: 46.68644814, Uncertainty: 2.9e-07},
	{Constant: codata2014.BohrMagnetonInKT(), Value: 0.67171405, Uncertainty: 3.9e-07},
	{Constant: codata2014.BohrRadius(), Value: 5.2917721067e-11, Uncertainty: 1.2e-20},
	{Constant: codata2014.BoltzmannConstant(), Value: 1.38064852e-23, Uncertainty: 7.9e-30},
	{Constant: codata2014.BoltzmannConstantInEVK(), Value: 8.6173303e-05, Uncertainty: 5e-11},
	{Constant: codata2014.BoltzmannConstantInHzK(), Value: 2.0836612e+10, Uncertainty: 12000},
	{Constant: codata2014.BoltzmannConstantInInverseMetersPerKelvin(), Value: 69.503457, Uncertainty: 4e-05},
	{Constant: codata2014.CharacteristicImpedanceOfVacuum(), Value: 376.730313461, Uncertainty: 0},
	{Constant: codata2014.ClassicalElectronRadius(), Value: 2.8179403227e-15, Uncertainty: 1.9e-24},
	{Constant: codata2014.ComptonWavelength(), Value: 2.4263102367e-12, Uncertainty: 1.1e-21},
	{Constant: codata2014.ComptonWavelengthOver2Pi(), Value: 3.8615926764e-13, Uncertainty: 1.8e-22},
	{Constant: codata2014.ConductanceQuantum(), Value: 7.748091731e-05, Uncertainty: 1.8e-14},
	{Constant: codata2014.ConventionalValueOfJosephsonConstant(), Value: 4.835979e+14, Uncertainty: 0},
	{Constant: codata2014.ConventionalValueOfVonKlitzingConstant(), Value: 25812.807, Uncertainty: 0},
	{Constant: codata2014.CuXUnit(), Value: 1.00207697e-13, Uncertainty: 2.8e-20},
	{Constant: codata2014.DeuteronElectronMagMomRatio(), Value: -0.0004664345535, Uncertainty: 2.6e-12},
	{Constant: codata2014.DeuteronElectronMassRatio(), Value: 3670.48296785, Uncertainty: 1.3e-07},
	{Constant: codata2014.DeuteronGFactor(), Value: 0.8574382311, Uncertainty: 4.8e-09},
	{Constant: codata2014.DeuteronMagMom(), Value: 4.33073504e-27, Uncertainty: 3.6e-35},
	{Constant: codata2014.DeuteronMagMomToBohrMagnetonRatio(), Value: 0.0004669754554, Uncertainty: 2.6e-12},
	{Constant: codata2014.DeuteronMagMomToNuclearMagnetonRatio(), Value: 0.8574382311, Uncertainty: 4.8e-09},
	{Constant: codata2014.DeuteronMass(), Value: 3.343583719e-27, Uncertainty: 4.1e-35},
	{Constant: codata2014.DeuteronMassEnergyEquivalent(), Value: 3.005063183e-10, Uncertainty: 3.7e-18},
	{Constant: codata2014.DeuteronMassEnergyEquivalentInMeV(), Value: 1875.612928, Uncertainty: 1.2e-05},
	{Constant: codata2014.DeuteronMassInU(), Value: 2.013553212745, Uncertainty: 4e-11},
	{Constant: codata2014.DeuteronMolarMass(), Value: 0.002013553212745, Uncertainty: 4e-14},
	{Constant: codata2014.DeuteronNeutronMagMomRatio(), Value: -0.44820652, Uncertainty: 1.1e-07},
	{Constant: codata2014.DeuteronProtonMagMomRatio(), Value: 0.3070122077, Uncertainty: 1.5e-09},
	{Constant: codata2014.DeuteronProtonMassRatio(), Value: 1.99900750087, Uncertainty: 1.9e-10},
	{Constant: codata2014.DeuteronRmsChargeRadius(), Value: 2.1413e-15, Uncertainty: 2.5e-18},
	{Constant: codata2014.ElectricConstant(), Value: 8.854187817e-12, Uncertainty: 0},
	{Constant: codata2014.ElectronChargeToMassQuotient(), Value: -1.758820024e+11, Uncertainty: 1100},
	{Constant: codata2014.ElectronDeuteronMagMomRatio(), Value: -2143.923499, Uncertainty: 1.2e-05},
	{Constant: codata2014.ElectronDeuteronMassRatio(), Value: 0.0002724437107484, Uncertainty: 9.6e-15},
	{Constant: codata2014.ElectronGFactor(), Value: -2.00231930436182, Uncertainty: 5.2e-13},
	{Constant: codata2014.ElectronGyromagRatio(), Value: 1.760859644e+11, Uncertainty: 1100},
	{Constant: codata2014.ElectronGyromagRatioOver2Pi(), Value: 28024.95164, Uncertainty: 0.00017},
	{Constant: codata2014.ElectronHelionMassRatio(), Value: 0.0001819543074854, Uncertainty: 8.8e-15},
	{Constant: codata2014.ElectronMagMom(), Value: -9.28476462e-24, Uncertainty: 5.7e-32},
	{Constant: codata2014.ElectronMagMomAnomaly(), Value: 0.00115965218091, Uncertainty: 2.6e-13},
	{Constant: codata2014.ElectronMagMomToBohrMagnetonRatio(), Value: -1.00115965218091, Uncertainty: 2.6e-13},
	{Constant: codata2014.ElectronMagMomToNuclearMagnetonRatio(), Value: -1838.28197234, Uncertainty: 1.7e-07},
	{Constant: codata2014.ElectronMass(), Value: 9.10938356e-31, Uncertainty: 1.1e-38},
	{Constant: codata2014.ElectronMassEnergyEquivalent(), Value: 8.18710565e-14, Uncertainty: 1e-21},
	{Constant: codata2014.ElectronMassEnergyEquivalentInMeV(), Value: 0.5109989461, Uncertainty: 3.1e-09},
	{Constant: codata2014.ElectronMassInU(), Value: 0.00054857990907, Uncertainty: 1.6e-14},
	{Constant: codata2014.ElectronMolarMass(), Value: 5.4857990907e-07, Uncertainty: 1.6e-17},
	{Constant: codata2014.ElectronMuonMagMomRatio(), Value: 206.766988, Uncertainty: 4.6e-06},
	{Constant: codata2014.ElectronMuonMassRatio(), Value: 0.0048363317, Uncertainty: 1.1e-10},
	{Constant: codata2014.ElectronNeutronMagMomRatio(), Value: 960.9205, Uncertainty: 0.00023},
	{Constant: codata2014.ElectronNeutronMassRatio(), Value: 0.00054386734428, Uncertainty: 2.7e-13},
	{Constant: codata2014.ElectronProtonMagMomRatio(), Value: -658.2106866, Uncertainty: 2e-06},
	{Constant: codata2014.ElectronProtonMassRatio(), Value: 0.000544617021352, Uncertainty: 5.2e-14},
	{Constant: codata2014.ElectronTauMassRatio(), Value: 0.000287592, Uncertainty: 2.6e-08},
	{Constant: codata2014.ElectronToAlphaParticleMassRatio(), Value: 0.0001370933554798, Uncertainty: 4.5e-15},
	{Constant: codata2014.ElectronToShieldedHelionMagMomRatio(), Value: 864.058257, Uncertainty: 1e-05},
	{Constant: codata2014.ElectronToShieldedProtonMagMomRatio(), Value: -658.2275971, Uncertainty: 7.2e-06},
	{Constant: codata2014.ElectronTritonMassRatio(), Value: 0.0001819200062203, Uncertainty: 8.4e-15},
	{Constant: codata2014.ElectronVolt(), Value: 1.6021766208e-19, Uncertainty: 9.8e-28},
	{Constant: codata2014.ElectronVoltAtomicMassUnitRelationship(), Value: 1.0735441105e-09, Uncertainty: 6.6e-18},
	{Constant: codata2014.ElectronVoltHartreeRelationship(), Value: 0.03674932248, Uncertainty: 2.3e-10},
	{Constant: codata2014.ElectronVoltHertzRelationship(), Value: 2.417989262e+14, Uncertainty: 1.5e+06},
	{Constant: codata2014.ElectronVoltInverseMeterRelationship(), Value: 806554.4005, Uncertainty: 0.005},
	{Constant: codata2014.ElectronVoltJouleRelationship(), Value: 1.6021766208e-19, Uncertainty: 9.8e-28},
	{Constant: codata2014.ElectronVoltKelvinRelationship(), Value: 11604.5221, Uncertainty: 0.0067},
	{Constant: codata2014.ElectronVoltKilogramRelationship(), Value: 1.782661907e-36, Uncertainty: 1.1e-44},
	{Constant: codata2014.ElementaryCharge(), Value: 1.6021766208e-19, Uncertainty: 9.8e-28},
	{Constant: codata2014.ElementaryChargeOverH(), Value: 2.417989262e+14, Uncertainty: 1.5e+06},
	{Constant: codata2014.FaradayConstant(), Value: 96485.33289, Uncertainty: 0.00059},
	{Constant: codata2014.FaradayConstantForConventionalElectricCurrent(), Value: 96485.3251, Uncertainty: 0.0012},
	{Constant: codata2014.FermiCouplingConstant(), Value: 1.1663787e-05, Uncertainty: 6e-12},
	{Constant: codata2014.FineStructureConstant(), Value: 0.0072973525664, Uncertainty: 1.7e-12},
	{Constant: codata2014.FirstRadiationConstant(), Value: 3.74177179e-16, Uncertainty: 4.6e-24},
	{Constant: codata2014.FirstRadiationConstantForSpectralRadiance(), Value: 1.191042953e-16, Uncertainty: 1.5e-24},
	{Constant: codata2014.HartreeAtomicMassUnitRelationship(), Value: 2.9212623197e-08, Uncertainty: 1.3e-17},
	{Constant: codata2014.HartreeElectronVoltRelationship(), Value: 27.21138602, Uncertainty: 1.7e-07},
	{Constant: codata2014.HartreeEnergy(), Value: 4.35974465e-18, Uncertainty: 5.4e-26},
	{Constant: codata2014.HartreeEnergyInEV(), Value: 27.21138602, Uncertainty: 1.7e-07},
	{Constant: codata2014.HartreeHertzRelationship(), Value: 6.579683920711e+15, Uncertainty: 3900},
	{Constant: codata2014.HartreeInverseMeterRelationship(), Value: 2.194746313702e+07, Uncertainty: 0.00013},
	{Constant: codata2014.HartreeJouleRelationship(), Value: 4.35974465e-18, Uncertainty: 5.4e-26},
	{Constant: codata2014.HartreeKelvinRelationship(), Value: 315775.13, Uncertainty: 0.18},
	{Constant: codata2014.HartreeKilogramRelationship(), Value: 4.850870129e-35, Uncertainty: 6e-43},
	{Constant: codata2014.HelionElectronMassRatio(), Value: 5495.88527922, Uncertainty: 2.7e-07},
	{Constant: codata2014.HelionGFactor(), Value: -4.255250616, Uncertainty: 5e-08},
	{Constant: codata2014.HelionMagMom(), Value: -1.074617522e-26, Uncertainty: 1.4e-34},
	{Constant: codata2014.HelionMagMomToBohrMagnetonRatio(), Value: -0.001158740958, Uncertainty: 1.4e-11},
	{Constant: codata2014.HelionMagMomToNuclearMagnetonRatio(), Value: -2.127625308, Uncertainty: 2.5e-08},
	{Constant: codata2014.HelionMass(), Value: 5.0064127e-27, Uncertainty: 6.2e-35},
	{Constant: codata2014.HelionMassEnergyEquivalent(), Value: 4.499539341e-10, Uncertainty: 5.5e-18},
	{Constant: codata2014.HelionMassEnergyEquivalentInMeV(), Value: 2808.391586, Uncertainty: 1.7e-05},
	{Constant: codata2014.HelionMassInU(), Value: 3.01493224673, Uncertainty: 1.2e-10},
	{Constant: codata2014.HelionMolarMass(), Value: 0.00301493224673, Uncertainty: 1.2e-13},
	{Constant: codata2014.HelionProtonMassRatio(), Value: 2.99315267046, Uncertainty: 2.9e-10},
	{Constant: codata2014.HertzAtomicMassUnitRelationship(), Value: 4.4398216616e-24, Uncertainty: 2e-33},
	{Constant: codata2014.HertzElectronVoltRelationship(), Value: 4.135667662e-15, Uncertainty: 2.5e-23},
	{Constant: codata2014.HertzHartreeRelationship(), Value: 1.5198298460088e-16, Uncertainty: 9e-28},
	{Constant: codata2014.HertzInverseMeterRelationship(), Value: 3.335640951e-09, Uncertainty: 0},
	{Constant: codata2014.HertzJouleRelationship(), Value: 6.62607004e-34, Uncertainty: 8.1e-42},
	{Constant: codata2014.HertzKelvinRelationship(), Value: 4.7992447e-11, Uncertainty: 2.8e-17},
	{Constant: codata2014.HertzKilogramRelationship(), Value: 7.372497201e-51, Uncertainty: 9.1e-59},
	{Constant: codata2014.InverseFineStructureConstant(), Value: 137.035999139, Uncertainty: 3.1e-08},
	{Constant: codata2014.InverseMeterAtomicMassUnitRelationship(), Value: 1.331025049e-15, Uncertainty: 6.1e-25},
	{Constant: codata2014.InverseMeterElectronVoltRelationship(), Value: 1.2398419739e-06, Uncertainty: 7.6e-15},
	{Constant: codata2014.InverseMeterHartreeRelationship(), Value: 4.556335252767e-08, Uncertainty: 2.7e-19},
	{Constant: codata2014.InverseMeterHertzRelationship(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2014.InverseMeterJouleRelationship(), Value: 1.986445824e-25, Uncertainty: 2.4e-33},
	{Constant: codata2014.InverseMeterKelvinRelationship(), Value: 0.0143877736, Uncertainty: 8.3e-09},
	{Constant: codata2014.InverseMeterKilogramRelationship(), Value: 2.210219057e-42, Uncertainty: 2.7e-50},
	{Constant: codata2014.InverseOfConductanceQuantum(), Value: 12906.4037278, Uncertainty: 2.9e-06},
	{Constant: codata2014.JosephsonConstant(), Value: 4.835978525e+14, Uncertainty: 3e+06},
	{Constant: codata2014.JouleAtomicMassUnitRelationship(), Value: 6.700535363e+09, Uncertainty: 82},
	{Constant: codata2014.JouleElectronVoltRelationship(), Value: 6.241509126e+18, Uncertainty: 3.8e+10},
	{Constant: codata2014.JouleHartreeRelationship(), Value: 2.293712317e+17, Uncertainty: 2.8e+09},
	{Constant: codata2014.JouleHertzRelationship(), Value: 1.509190205e+33, Uncertainty: 1.9e+25},
	{Constant: codata2014.JouleInverseMeterRelationship(), Value: 5.034116651e+24, Uncertainty: 6.2e+16},
	{Constant: codata2014.JouleKelvinRelationship(), Value: 7.2429731e+22, Uncertainty: 4.2e+16},
	{Constant: codata2014.JouleKilogramRelationship(), Value: 1.112650056e-17, Uncertainty: 0},
	{Constant: codata2014.KelvinAtomicMassUnitRelationship(), Value: 9.2510872e-14, Uncertainty: 5.3e-20},
	{Constant: codata2014.KelvinElectronVoltRelationship(), Value: 8.6173303e-05, Uncertainty: 5e-11},
	{Constant: codata2014.KelvinHartreeRelationship(), Value: 3.1668105e-06, Uncertainty: 1.8e-12},
	{Constant: codata2014.KelvinHertzRelationship(), Value: 2.0836612e+10, Uncertainty: 12000},
	{Constant: codata2014.KelvinInverseMeterRelationship(), Value: 69.503457, Uncertainty: 4e-05},
	{Constant: codata2014.KelvinJouleRelationship(), Value: 1.38064852e-23, Uncertainty: 7.9e-30},
	{Constant: codata2014.KelvinKilogramRelationship(), Value: 1.53617865e-40, Uncertainty: 8.8e-47},
	{Constant: codata2014.KilogramAtomicMassUnitRelationship(), Value: 6.022140857e+26, Uncertainty: 7.4e+18},
	{Constant: codata2014.KilogramElectronVoltRelationship(), Value: 5.60958865e+35, Uncertainty: 3.4e+27},
	{Constant: codata2014.KilogramHartreeRelationship(), Value: 2.061485823e+34, Uncertainty: 2.5e+26},
	{Constant: codata2014.KilogramHertzRelationship(), Value: 1.356392512e+50, Uncertainty: 1.7e+42},
	{Constant: codata2014.KilogramInverseMeterRelationship(), Value: 4.524438411e+41, Uncertainty: 5.6e+33},
	{Constant: codata2014.KilogramJouleRelationship(), Value: 8.987551787e+16, Uncertainty: 0},
	{Constant: codata2014.KilogramKelvinRelationship(), Value: 6.5096595e+39, Uncertainty: 3.7e+33},
	{Constant: codata2014.LatticeParameterOfSilicon(), Value: 5.431020504e-10, Uncertainty: 8.9e-18},
	{Constant: codata2014.LoschmidtConstant27315K100KPa(), Value: 2.6516467e+25, Uncertainty: 1.5e+19},
	{Constant: codata2014.LoschmidtConstant27315K101325KPa(), Value: 2.6867811e+25, Uncertainty: 1.5e+19},
	{Constant: codata2014.MagConstant(), Value: 1.2566370614e-06, Uncertainty: 0},
	{Constant: codata2014.MagFluxQuantum(), Value: 2.067833831e-15, Uncertainty: 1.3e-23},
	{Constant: codata2014.MolarGasConstant(), Value: 8.3144598, Uncertainty: 4.8e-06},
	{Constant: codata2014.MolarMassConstant(), Value: 0.001, Uncertainty: 0},
	{Constant: codata2014.MolarMassOfCarbon12(), Value: 0.012, Uncertainty: 0},
	{Constant: codata2014.MolarPlanckConstant(), Value: 3.990312711e-10, Uncertainty: 1.8e-19},
	{Constant: codata2014.MolarPlanckConstantTimesC(), Value: 0.119626565582, Uncertainty: 5.4e-11},
	{Constant: codata2014.MolarVolumeOfIdealGas27315K100KPa(), Value: 0.022710947, Uncertainty: 1.3e-08},
	{Constant: codata2014.MolarVolumeOfIdealGas27315K101325KPa(), Value: 0.022413962, Uncertainty: 1.3e-08},
	{Constant: codata2014.MolarVolumeOfSilicon(), Value: 1.205883214e-05, Uncertainty: 6.1e-13},
	{Constant: codata2014.MoXUnit(), Value: 1.00209952e-13, Uncertainty: 5.3e-20},
	{Constant: codata2014.MuonComptonWavelength(), Value: 1.173444111e-14, Uncertainty: 2.6e-22},
	{Constant: codata2014.MuonComptonWavelengthOver2Pi(), Value: 1.867594308e-15, Uncertainty: 4.2e-23},
	{Constant: codata2014.MuonElectronMassRatio(), Value: 206.7682826, Uncertainty: 4.6e-06},
	{Constant: codata2014.MuonGFactor(), Value: -2.0023318418, Uncertainty: 1.3e-09},
	{Constant: codata2014.MuonMagMom(), Value: -4.49044826e-26, Uncertainty: 1e-33},
	{Constant: codata2014.MuonMagMomAnomaly(), Value: 0.00116592089, Uncertainty: 6.3e-10},
	{Constant: codata2014.MuonMagMomToBohrMagnetonRatio(), Value: -0.00484197048, Uncertainty: 1.1e-10},
	{Constant: codata2014.MuonMagMomToNuclearMagnetonRatio(), Value: -8.89059705, Uncertainty: 2e-07},
	{Constant: codata2014.MuonMass(), Value: 1.883531594e-28, Uncertainty: 4.8e-36},
	{Constant: codata2014.MuonMassEnergyEquivalent(), Value: 1.692833774e-11, Uncertainty: 4.3e-19},
	{Constant: codata2014.MuonMassEnergyEquivalentInMeV(), Value: 105.6583745, Uncertainty: 2.4e-06},
	{Constant: codata2014.MuonMassInU(), Value: 0.1134289257, Uncertainty: 2.5e-09},
	{Constant: codata2014.MuonMolarMass(), Value: 0.0001134289257, Uncertainty: 2.5e-12},
	{Constant: codata2014.MuonNeutronMassRatio(), Value: 0.1124545167, Uncertainty: 2.5e-09},
	{Constant: codata2014.MuonProtonMagMomRatio(), Value: -3.183345142, Uncertainty: 7.1e-08},
	{Constant: codata2014.MuonProtonMassRatio(), Value: 0.1126095262, Uncertainty: 2.5e-09},
	{Constant: codata2014.MuonTauMassRatio(), Value: 0.0594649, Uncertainty: 5.4e-06},
	{Constant: codata2014.NaturalUnitOfAction(), Value: 1.0545718e-34, Uncertainty: 1.3e-42},
	{Constant: codata2014.NaturalUnitOfActionInEVS(), Value: 6.582119514e-16, Uncertainty: 4e-24},
	{Constant: codata2014.NaturalUnitOfEnergy(), Value: 8.18710565e-14, Uncertainty: 1e-21},
	{Constant: codata2014.NaturalUnitOfEnergyInMeV(), Value: 0.5109989461, Uncertainty: 3.1e-09},
	{Constant: codata2014.NaturalUnitOfLength(), Value: 3.8615926764e-13, Uncertainty: 1.8e-22},
	{Constant: codata2014.NaturalUnitOfMass(), Value: 9.10938356e-31, Uncertainty: 1.1e-38},
	{Constant: codata2014.NaturalUnitOfMomentum(), Value: 2.730924488e-22, Uncertainty: 3.4e-30},
	{Constant: codata2014.NaturalUnitOfMomentumInMeVC(), Value: 0.5109989461, Uncertainty: 3.1e-09},
	{Constant: codata2014.NaturalUnitOfTime(), Value: 1.28808866712e-21, Uncertainty: 8.6e-31},
	{Constant: codata2014.NaturalUnitOfVelocity(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2014.NeutronComptonWavelength(), Value: 1.31959090481e-15, Uncertainty: 8.8e-25},
	{Constant: codata2014.NeutronComptonWavelengthOver2Pi(), Value: 2.1001941536e-16, Uncertainty: 1.4e-25},
	{Constant: codata2014.NeutronElectronMagMomRatio(), Value: 0.00104066882, Uncertainty: 2.5e-10},
	{Constant: codata2014.NeutronElectronMassRatio(), Value: 1838.68366158, Uncertainty: 9e-07},
	{Constant: codata2014.NeutronGFactor(), Value: -3.82608545, Uncertainty: 9e-07},
	{Constant: codata2014.NeutronGyromagRatio(), Value: 1.83247172e+08, Uncertainty: 43},
	{Constant: codata2014.NeutronGyromagRatioOver2Pi(), Value: 29.1646933, Uncertainty: 6.9e-06},
	{Constant: codata2014.NeutronMagMom(), Value: -9.662365e-27, Uncertainty: 2.3e-33},
	{Constant: codata2014.NeutronMagMomToBohrMagnetonRatio(), Value: -0.00104187563, Uncertainty: 2.5e-10},
	{Constant: codata2014.NeutronMagMomToNuclearMagnetonRatio(), Value: -1.91304273, Uncertainty: 4.5e-07},
	{Constant: codata2014.NeutronMass(), Value: 1.674927471e-27, Uncertainty: 2.1e-35},
	{Constant: codata2014.NeutronMassEnergyEquivalent(), Value: 1.505349739e-10, Uncertainty: 1.9e-18},
	{Constant: codata2014.NeutronMassEnergyEquivalentInMeV(), Value: 939.5654133, Uncertainty: 5.8e-06},
	{Constant: codata2014.NeutronMassInU(), Value: 1.00866491588, Uncertainty: 4.9e-10},
	{Constant: codata2014.NeutronMolarMass(), Value: 0.00100866491588, Uncertainty: 4.9e-13},
	{Constant: codata2014.NeutronMuonMassRatio(), Value: 8.89248408, Uncertainty: 2e-07},
	{Constant: codata2014.NeutronProtonMagMomRatio(), Value: -0.68497934, Uncertainty: 1.6e-07},
	{Constant: codata2014.NeutronProtonMassDifference(), Value: 2.30557377e-30, Uncertainty: 8.5e-37},
	{Constant: codata2014.NeutronProtonMassDifferenceEnergyEquivalent(), Value: 2.07214637e-13, Uncertainty: 7.6e-20},
	{Constant: codata2014.NeutronProtonMassDifferenceEnergyEquivalentInMeV(), Value: 1.29333205, Uncertainty: 4.8e-07},
	{Constant: codata2014.NeutronProtonMassDifferenceInU(), Value: 0.001388449, Uncertainty: 5.1e-10},
	{Constant: codata2014.NeutronProtonMassRatio(), Value: 1.00137841898, Uncertainty: 5.1e-10},
	{Constant: codata2014.NeutronTauMassRatio(), Value: 0.52879, Uncertainty: 4.8e-05},
	{Constant: codata2014.NeutronToShieldedProtonMagMomRatio(), Value: -0.68499694, Uncertainty: 1.6e-07},
	{Constant: codata2014.NewtonianConstantOfGravitation(), Value: 6.67408e-11, Uncertainty: 3.1e-15},
	{Constant: codata2014.NewtonianConstantOfGravitationOverHBarC(), Value: 6.70861e-39, Uncertainty: 3.1e-43},
	{Constant: codata2014.NuclearMagneton(), Value: 5.050783699e-27, Uncertainty: 3.1e-35},
	{Constant: codata2014.NuclearMagnetonInEVT(), Value: 3.152451255e-08, Uncertainty: 1.5e-17},
	{Constant: codata2014.NuclearMagnetonInInverseMetersPerTesla(), Value: 0.02542623432, Uncertainty: 1.6e-10},
	{Constant: codata2014.NuclearMagnetonInKT(), Value: 0.0003658269, Uncertainty: 2.1e-10},
	{Constant: codata2014.NuclearMagnetonInMHzT(), Value: 7.622593285, Uncertainty: 4.7e-08},
	{Constant: codata2014.PlanckConstant(), Value: 6.62607004e-34, Uncertainty: 8.1e-42},
	{Constant: codata2014.PlanckConstantInEVS(), Value: 4.135667662e-15, Uncertainty: 2.5e-23},
	{Constant: codata2014.PlanckConstantOver2Pi(), Value: 1.0545718e-34, Uncertainty: 1.3e-42},
	{Constant: codata2014.PlanckConstantOver2PiInEVS(), Value: 6.582119514e-16, Uncertainty: 4e-24},
	{Constant: codata2014.PlanckConstantOver2PiTimesCInMeVFm(), Value: 197.3269788, Uncertainty: 1.2e-06},
	{Constant: codata2014.PlanckLength(), Value: 1.616229e-35, Uncertainty: 3.8e-40},
	{Constant: codata2014.PlanckMass(), Value: 2.17647e-08, Uncertainty: 5.1e-13},
	{Constant: codata2014.PlanckMassEnergyEquivalentInGeV(), Value: 1.22091e+19, Uncertainty: 2.9e+14},
	{Constant: codata2014.PlanckTemperature(), Value: 1.416808e+32, Uncertainty: 3.3e+27},
	{Constant: codata2014.PlanckTime(), Value: 5.39116e-44, Uncertainty: 1.3e-48},
	{Constant: codata2014.ProtonChargeToMassQuotient(), Value: 9.578833226e+07, Uncertainty: 0.59},
	{Constant: codata2014.ProtonComptonWavelength(), Value: 1.32140985396e-15, Uncertainty: 6.1e-25},
	{Constant: codata2014.ProtonComptonWavelengthOver2Pi(), Value: 2.10308910109e-16, Uncertainty: 9.7e-26},
	{Constant: codata2014.ProtonElectronMassRatio(), Value: 1836.15267389, Uncertainty: 1.7e-07},
	{Constant: codata2014.ProtonGFactor(), Value: 5.585694702, Uncertainty: 1.7e-08},
	{Constant: codata2014.ProtonGyromagRatio(), Value: 2.6752219e+08, Uncertainty: 1.8},
	{Constant: codata2014.ProtonGyromagRatioOver2Pi(), Value: 42.57747892, Uncertainty: 2.9e-07},
	{Constant: codata2014.ProtonMagMom(), Value: 1.4106067873e-26, Uncertainty: 9.7e-35},
	{Constant: codata2014.ProtonMagMomToBohrMagnetonRatio(), Value: 0.0015210322053, Uncertainty: 4.6e-12},
	{Constant: codata2014.ProtonMagMomToNuclearMagnetonRatio(), Value: 2.7928473508, Uncertainty: 8.5e-09},
	{Constant: codata2014.ProtonMagShieldingCorrection(), Value: 2.5691e-05, Uncertainty: 1.1e-08},
	{Constant: codata2014.ProtonMass(), Value: 1.672621898e-27, Uncertainty: 2.1e-35},
	{Constant: codata2014.ProtonMassEnergyEquivalent(), Value: 1.503277593e-10, Uncertainty: 1.8e-18},
	{Constant: codata2014.ProtonMassEnergyEquivalentInMeV(), Value: 938.2720813, Uncertainty: 5.8e-06},
	{Constant: codata2014.ProtonMassInU(), Value: 1.007276466879, Uncertainty: 9.1e-11},
	{Constant: codata2014.ProtonMolarMass(), Value: 0.001007276466879, Uncertainty: 9.1e-14},
	{Constant: codata2014.ProtonMuonMassRatio(), Value: 8.88024338, Uncertainty: 2e-07},
	{Constant: codata2014.ProtonNeutronMagMomRatio(), Value: -1.45989805, Uncertainty: 3.4e-07},
	{Constant: codata2014.ProtonNeutronMassRatio(), Value: 0.99862347844, Uncertainty: 5.1e-10},
	{Constant: codata2014.ProtonRmsChargeRadius(), Value: 8.751e-16, Uncertainty: 6.1e-18},
	{Constant: codata2014.ProtonTauMassRatio(), Value: 0.528063, Uncertainty: 4.8e-05},
	{Constant: codata2014.QuantumOfCirculation(), Value: 0.00036369475486, Uncertainty: 1.7e-13},
	{Constant: codata2014.QuantumOfCirculationTimes2(), Value: 0.00072738950972, Uncertainty: 3.3e-13},
	{Constant: codata2014.RydbergConstant(), Value: 1.0973731568508e+07, Uncertainty: 6.5e-05},
	{Constant: codata2014.RydbergConstantTimesCInHz(), Value: 3.289841960355e+15, Uncertainty: 19000},
	{Constant: codata2014.RydbergConstantTimesHcInEV(), Value: 13.605693009, Uncertainty: 8.4e-08},
	{Constant: codata2014.RydbergConstantTimesHcInJ(), Value: 2.179872325e-18, Uncertainty: 2.7e-26},
	{Constant: codata2014.SackurTetrodeConstant1K100KPa(), Value: -1.1517084, Uncertainty: 1.4e-06},
	{Constant: codata2014.SackurTetrodeConstant1K101325KPa(), Value: -1.1648714, Uncertainty: 1.4e-06},
	{Constant: codata2014.SecondRadiationConstant(), Value: 0.0143877736, Uncertainty: 8.3e-09},
	{Constant: codata2014.ShieldedHelionGyromagRatio(), Value: 2.037894585e+08, Uncertainty: 2.7},
	{Constant: codata2014.ShieldedHelionGyromagRatioOver2Pi(), Value: 32.43409966, Uncertainty: 4.3e-07},
	{Constant: codata2014.ShieldedHelionMagMom(), Value: -1.07455308e-26, Uncertainty: 1.4e-34},
	{Constant: codata2014.ShieldedHelionMagMomToBohrMagnetonRatio(), Value: -0.001158671471, Uncertainty: 1.4e-11},
	{Constant: codata2014.ShieldedHelionMagMomToNuclearMagnetonRatio(), Value: -2.12749772, Uncertainty: 2.5e-08},
	{Constant: codata2014.ShieldedHelionToProtonMagMomRatio(), Value: -0.7617665603, Uncertainty: 9.2e-09},
	{Constant: codata2014.ShieldedHelionToShieldedProtonMagMomRatio(), Value: -0.7617861313, Uncertainty: 3.3e-09},
	{Constant: codata2014.ShieldedProtonGyromagRatio(), Value: 2.675153171e+08, Uncertainty: 3.3},
	{Constant: codata2014.ShieldedProtonGyromagRatioOver2Pi(), Value: 42.57638507, Uncertainty: 5.3e-07},
	{Constant: codata2014.ShieldedProtonMagMom(), Value: 1.410570547e-26, Uncertainty: 1.8e-34},
	{Constant: codata2014.ShieldedProtonMagMomToBohrMagnetonRatio(), Value: 0.001520993128, Uncertainty: 1.7e-11},
	{Constant: codata2014.ShieldedProtonMagMomToNuclearMagnetonRatio(), Value: 2.7927756, Uncertainty: 3e-08},
	{Constant: codata2014.SpeedOfLightInVacuum(), Value: 2.99792458e+08, Uncertainty: 0},
	{Constant: codata2014.StandardAccelerationOfGravity(), Value: 9.80665, Uncertainty: 0},
	{Constant: codata2014.StandardAtmosphere(), Value: 101325, Uncertainty: 0},
	{Constant: codata2014.StandardStatePressure(), Value: 100000, Uncertainty: 0},
	{Constant: codata2014.StefanBoltzmannConstant(), Value: 5.670367e-08, Uncertainty: 1.3e-13},
	{Constant: codata2014.TauComptonWavelength(), Value: 6.97787e-16, Uncertainty: 6.3e-20},
	{Constant: codata2014.TauComptonWavelengthOver2Pi(), Value: 1.11056e-16, Uncertainty: 1e-20},
	{Constant: codata2014.TauElectronMassRatio(), Value: 3477.15, Uncertainty: 0.31},
	{Constant: codata2014.TauMass(), Value: 3.16747e-27, Uncertainty: 2.9e-31},
	{Constant: codata2014.TauMassEnergyEquivalent(), Value: 2.84678e-10, Uncertainty: 2.6e-14},
	{Constant: codata2014.TauMassEnergyEquivalentInMeV(), Value: 1776.82, Uncertainty: 0.16},
	{Constant: codata2014.TauMassInU(), Value: 1.90749, Uncertainty: 0.00017},
	{Constant: codata2014.TauMolarMass(), Value: 0.00190749, Uncertainty: 1.7e-07},
	{Constant: codata2014.TauMuonMassRatio(), Value: 16.8167, Uncertainty: 0.0015},
	{Constant: codata2014.TauNeutronMassRatio(), Value: 1.89111, Uncertainty: 0.00017},
	{Constant: codata2014.TauProtonMassRatio(), Value: 1.89372, Uncertainty: 0.00017},
	{Constant: codata2014.ThomsonCrossSection(), Value: 6.6524587158e-29, Uncertainty: 9.1e-38},
	{Constant: codata2014.TritonElectronMagMomRatio(), Value: -0.0016205144196, Uncertainty: 7.6e-12},
	{Constant: codata2014.TritonElectronMassRatio(), Value: 5496.92153588, Uncertainty: 2.6e-07},
	{Constant: codata2014.TritonGFactor(), Value: 5.95792492, Uncertainty: 2.8e-08},
	{Constant: codata2014.TritonMagMom(), Value: 1.504609503e-26, Uncertainty: 1.2e-34},
	{Constant: codata2014.TritonMagMomToBohrMagnetonRatio(), Value: 0.0016223936616, Uncertainty: 7.6e-12},
	{Constant: codata2014.TritonMagMomToNuclearMagnetonRatio(), Value: 2.97896246, Uncertainty: 1.4e-08},
	{Constant: codata2014.TritonMass(), Value: 5.007356665e-27, Uncertainty: 6.2e-35},
	{Constant: codata2014.TritonMassEnergyEquivalent(), Value: 4.500387735e-10, Uncertainty: 5.5e-18},
	{Constant: codata2014.TritonMassEnergyEquivalentInMeV(), Value: 2808.921112, Uncertainty: 1.7e-05},
	{Constant: codata2014.TritonMassInU(), Value: 3.01550071632, Uncertainty: 1.1e-10},
	{Constant: codata2014.TritonMolarMass(), Value: 0.00301550071632, Uncertainty: 1.1e-13},
	{Constant: codata2014.TritonNeutronMagMomRatio(), Value: -1.5571855, Uncertainty: 3.7e-07},
	{Constant: codata2014.TritonProtonMagMomRatio(), Value: 1.066639908, Uncertainty: 1e-08},
	{Constant: codata2014.TritonProtonMassRatio(), Value: 2.99371703348, Uncertainty: 2.2e-10},
	{Constant: codata2014.UnifiedAtomicMassUnit(), Value: 1.66053904e-27, Uncertainty: 2e-35},
	{Constant: codata2014.VonKlitzingConstant(), Value: 25812.8074555, Uncertainty: 5.9e-06},
	{Constant: codata2014.WeakMixingAngle(), Value: 0.2223, Uncertainty: 0.0021},
	{Constant: codata2014.WienFrequencyDisplacementLawConstant(), Value: 5.8789238e+10, Uncertainty: 34000},
	{Constant: codata2014.WienWavelengthDisplacementLawConstant(), Value: 0.0028977729, Uncertainty: 1.7e-09},
	{Constant: codata2014.LatticeSpacingOfSilicon220(), Value: 1.920155714e-10, Uncertainty: 3.2e-18},
}
